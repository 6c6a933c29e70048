package db

import (
	"context"
	"path/filepath"
	"testing"

	"doenerkiosk/internal/order"
	"doenerkiosk/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSeedsSettingsSingleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")

	conn, err := Connect("", path)
	require.NoError(t, err)

	var count int64
	require.NoError(t, conn.Model(&settings.Settings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	repo := settings.NewGormRepository(conn)
	row, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, row.OrderingEnabled)

	// Reconnecting must not multiply the singleton.
	conn2, err := Connect("", path)
	require.NoError(t, err)
	require.NoError(t, conn2.Model(&settings.Settings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOrderDeleteCascadesToItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")

	conn, err := Connect("", path)
	require.NoError(t, err)

	repo := order.NewGormRepository(conn)
	o := &order.Order{
		Name:          "Anna",
		PaymentMethod: "bar",
		Items: []order.Item{
			{Item: "Pizza", Size: "mittel", Price: "7,00"},
			{Item: "Döner", Size: "klein", Price: "4,00"},
		},
	}
	require.NoError(t, repo.Create(context.Background(), o))

	var itemCount int64
	require.NoError(t, conn.Model(&order.Item{}).Count(&itemCount).Error)
	assert.EqualValues(t, 2, itemCount)

	require.NoError(t, repo.Delete(context.Background(), o.ID))

	require.NoError(t, conn.Model(&order.Item{}).Count(&itemCount).Error)
	assert.EqualValues(t, 0, itemCount, "deleting an order removes its items")

	var orderCount int64
	require.NoError(t, conn.Model(&order.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount)
}

func TestMarkPaidOnDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")

	conn, err := Connect("", path)
	require.NoError(t, err)

	repo := order.NewGormRepository(conn)
	o := &order.Order{Name: "Ben", PaymentMethod: "paypal"}
	require.NoError(t, repo.Create(context.Background(), o))

	require.NoError(t, repo.MarkPaid(context.Background(), o.ID))
	require.NoError(t, repo.MarkPaid(context.Background(), o.ID), "marking paid twice is a no-op")

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Paid)

	assert.ErrorIs(t, repo.MarkPaid(context.Background(), 999), order.ErrNotFound)
}
