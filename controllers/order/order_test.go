package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LorinczNorbertAttila/L-and-E/models"
)

func TestParseListQuery(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	page, limit, threshold := parseListQuery("", "", "all", now)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
	assert.True(t, threshold.IsZero())

	page, limit, _ = parseListQuery("-2", "500", "all", now)
	assert.Equal(t, 1, page)
	assert.Equal(t, maxPageSize, limit)

	page, limit, threshold = parseListQuery("3", "50", "3months", now)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)
	assert.Equal(t, now.AddDate(0, -3, 0), threshold)

	_, _, threshold = parseListQuery("1", "20", "6months", now)
	assert.Equal(t, now.AddDate(0, -6, 0), threshold)

	_, _, threshold = parseListQuery("1", "20", "bogus", now)
	assert.True(t, threshold.IsZero())
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"Procesare", "În curs de livrare", "Expediată", "Finalizată", "Anulată"} {
		status, ok := mapOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, models.OrderStatus(valid), status)
	}

	_, ok := mapOrderStatus("pending")
	assert.False(t, ok)
	_, ok = mapOrderStatus("")
	assert.False(t, ok)
}
