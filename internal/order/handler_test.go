package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderTestRouter(t *testing.T) (*gin.Engine, *InMemoryRepository, *settings.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menuRepo := menu.NewInMemoryRepository()
	require.NoError(t, menuRepo.Create(context.Background(), &menu.Item{
		Name: "Pizza", PriceSmall: "5,00", PriceMedium: "7,00", PriceLarge: "9,00",
	}))

	repo := NewInMemoryRepository()
	settingsService := settings.NewService(settings.NewInMemoryRepository())
	handler := NewHandler(NewService(repo, menuRepo, settingsService))

	r := gin.New()
	r.POST("/order", handler.Submit)
	r.GET("/admin/mark_paid/:id", handler.MarkPaid)
	r.POST("/admin/delete_order/:id", handler.Delete)

	return r, repo, settingsService
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitHandlerRedirectsToMenu(t *testing.T) {
	r, repo, _ := setupOrderTestRouter(t)

	w := postForm(r, "/order", url.Values{
		"name":           {"Anna"},
		"payment_method": {"bar"},
		"item":           {"Pizza"},
		"size":           {"mittel"},
		"extra_wishes":   {""},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	orders, _ := repo.List(context.Background())
	require.Len(t, orders, 1)
	assert.Equal(t, "7,00", orders[0].Items[0].Price)
}

func TestSubmitHandlerSilentRedirectWhenClosed(t *testing.T) {
	r, repo, settingsService := setupOrderTestRouter(t)

	_, err := settingsService.ToggleOrdering(context.Background())
	require.NoError(t, err)

	w := postForm(r, "/order", url.Values{
		"name":           {"Anna"},
		"payment_method": {"bar"},
		"item":           {"Pizza"},
		"size":           {"mittel"},
		"extra_wishes":   {""},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	orders, _ := repo.List(context.Background())
	assert.Empty(t, orders)
}

func TestSubmitHandlerRejectsMismatchedLists(t *testing.T) {
	r, _, _ := setupOrderTestRouter(t)

	w := postForm(r, "/order", url.Values{
		"name":           {"Anna"},
		"payment_method": {"bar"},
		"item":           {"Pizza", "Pizza"},
		"size":           {"mittel"},
		"extra_wishes":   {"", ""},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkPaidHandler(t *testing.T) {
	r, repo, _ := setupOrderTestRouter(t)

	require.NoError(t, repo.Create(context.Background(), &Order{
		Name: "Anna", PaymentMethod: "bar",
		Items: []Item{{Item: "Pizza", Size: "klein", Price: "5,00"}},
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/mark_paid/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin_dashboard", w.Header().Get("Location"))

	orders, _ := repo.List(context.Background())
	assert.True(t, orders[0].Paid)
}

func TestMarkPaidHandlerUnknownID(t *testing.T) {
	r, _, _ := setupOrderTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/mark_paid/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderHandler(t *testing.T) {
	r, repo, _ := setupOrderTestRouter(t)

	require.NoError(t, repo.Create(context.Background(), &Order{
		Name: "Anna", PaymentMethod: "bar",
	}))

	w := postForm(r, "/admin/delete_order/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	orders, _ := repo.List(context.Background())
	assert.Empty(t, orders)
}
