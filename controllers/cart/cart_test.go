package cartController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/cart"
)

type nopStorage struct{}

func (nopStorage) Load() ([]cart.Line, error) { return nil, nil }
func (nopStorage) Save([]cart.Line) error     { return nil }
func (nopStorage) Clear() error               { return nil }

func newRouter(carts *cart.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/cart", GetCart(carts))
	r.PUT("/api/cart/items/:product_id", UpdateQuantity(carts))
	r.DELETE("/api/cart/items/:product_id", RemoveItem(carts))
	r.DELETE("/api/cart", ClearCart(carts))
	return r
}

func seededManager() *cart.Manager {
	m := cart.NewManager(func(string) cart.Storage { return nopStorage{} })
	store := m.Get("sess-1")
	store.AddItem(cart.Candidate{ProductID: "1", Name: "Pizza", UnitPrice: 30})
	store.AddItem(cart.Candidate{ProductID: "1", Name: "Pizza", UnitPrice: 30})
	store.AddItem(cart.Candidate{ProductID: "2", Name: "Soda", UnitPrice: 5.5})
	return m
}

type cartBody struct {
	Items []struct {
		ProductID string  `json:"product_id"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, cartBody) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Session-ID", "sess-1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed cartBody
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
	}
	return w, parsed
}

func TestGetCart(t *testing.T) {
	r := newRouter(seededManager())
	w, body := doRequest(t, r, http.MethodGet, "/api/cart", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", body.TotalItems)
	}
	if body.TotalPrice != 65.5 {
		t.Fatalf("expected total 65.5, got %v", body.TotalPrice)
	}
}

func TestGetCartRequiresSession(t *testing.T) {
	r := newRouter(seededManager())
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session id, got %d", w.Code)
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	r := newRouter(seededManager())
	w, body := doRequest(t, r, http.MethodPut, "/api/cart/items/1", `{"quantity":5}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.TotalItems != 6 {
		t.Fatalf("expected 6 items after set, got %d", body.TotalItems)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	r := newRouter(seededManager())
	w, body := doRequest(t, r, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(body.Items) != 1 || body.Items[0].ProductID != "2" {
		t.Fatalf("expected only soda to remain, got %+v", body.Items)
	}
}

func TestRemoveItem(t *testing.T) {
	r := newRouter(seededManager())
	w, body := doRequest(t, r, http.MethodDelete, "/api/cart/items/2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", body.TotalItems)
	}

	// Unknown product: still 200, cart unchanged.
	w, body = doRequest(t, r, http.MethodDelete, "/api/cart/items/999", "")
	if w.Code != http.StatusOK || body.TotalItems != 2 {
		t.Fatalf("no-op remove changed the cart: code=%d items=%d", w.Code, body.TotalItems)
	}
}

func TestClearCart(t *testing.T) {
	r := newRouter(seededManager())
	w, body := doRequest(t, r, http.MethodDelete, "/api/cart", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.TotalItems != 0 || body.TotalPrice != 0 {
		t.Fatalf("expected empty cart, got %+v", body)
	}
	if body.Items == nil {
		t.Fatal("items must serialize as an empty array, not null")
	}
}
