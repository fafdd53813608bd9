// Package gormstore backs store.Store with GORM over Postgres. Transactions
// take FOR UPDATE row locks on every product they read, so two transactions
// touching the same product serialize on its stock field.
package gormstore

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithTransaction(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

func (s *Store) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Cart").First(&user, "id = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetCart(ctx context.Context, uid string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", uid).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	chunks := store.ChunkIDs(ids, store.ChunkSize)
	results := make([][]models.Product, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			var products []models.Product
			if err := s.db.WithContext(gctx).Where("id IN ?", chunk).Find(&products).Error; err != nil {
				return err
			}
			results[i] = products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var products []models.Product
	for _, part := range results {
		products = append(products, part...)
	}
	return products, nil
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) GetUser(uid string) (*models.User, error) {
	var user models.User
	err := t.db.Preload("Cart").First(&user, "id = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *gormTx) GetCart(uid string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := t.db.Where("user_id = ?", uid).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (t *gormTx) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (t *gormTx) PutCart(uid string, items []models.CartItem) error {
	if err := t.db.Where("user_id = ?", uid).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].UserID = uid
	}
	return t.db.Create(&items).Error
}

func (t *gormTx) DecrementStock(productID string, by int) error {
	return t.db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("quantity", gorm.Expr("quantity - ?", by)).Error
}

func (t *gormTx) PutOrder(order *models.Order) error {
	return t.db.Create(order).Error
}

func (t *gormTx) ClearCart(uid string) error {
	return t.db.Where("user_id = ?", uid).Delete(&models.CartItem{}).Error
}
