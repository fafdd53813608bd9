package memstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
	"github.com/LorinczNorbertAttila/L-and-E/store/memstore"
)

func TestFailedTransactionLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	st.SeedProduct(models.Product{ID: "P1", Name: "Var", Price: 3, Quantity: 10})

	boom := errors.New("boom")
	err := st.WithTransaction(ctx, func(tx store.Tx) error {
		if err := tx.DecrementStock("P1", 4); err != nil {
			return err
		}
		if err := tx.PutCart("U1", []models.CartItem{{ProductID: "P1", Quantity: 1}}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	product, ok := st.Product("P1")
	require.True(t, ok)
	assert.Equal(t, 10, product.Quantity)

	cart, err := st.GetCart(ctx, "U1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCommittedTransactionIsVisible(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	st.SeedProduct(models.Product{ID: "P1", Name: "Var", Price: 3, Quantity: 10})

	err := st.WithTransaction(ctx, func(tx store.Tx) error {
		if err := tx.DecrementStock("P1", 4); err != nil {
			return err
		}
		return tx.PutCart("U1", []models.CartItem{{ProductID: "P1", Quantity: 1}})
	})
	require.NoError(t, err)

	product, _ := st.Product("P1")
	assert.Equal(t, 6, product.Quantity)

	cart, err := st.GetCart(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "U1", cart[0].UserID)
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	_, err := st.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReadsInsideTransactionSeeStagedWrites(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	st.SeedProduct(models.Product{ID: "P1", Name: "Var", Price: 3, Quantity: 10})

	err := st.WithTransaction(ctx, func(tx store.Tx) error {
		if err := tx.DecrementStock("P1", 3); err != nil {
			return err
		}
		product, err := tx.GetProduct("P1")
		if err != nil {
			return err
		}
		assert.Equal(t, 7, product.Quantity)
		return nil
	})
	require.NoError(t, err)
}
