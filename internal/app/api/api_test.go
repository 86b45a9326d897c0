package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dominiofast/smartfood-landing-sub000/internal/board"
	"github.com/dominiofast/smartfood-landing-sub000/internal/catalog"
	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
	"github.com/dominiofast/smartfood-landing-sub000/internal/snapshot"
)

func newTestServer() http.Handler {
	store := snapshot.NewStore(snapshot.NewMemoryStore())
	return NewRouter(NewHandler(
		catalog.NewService(store),
		board.NewService(store, nil),
	))
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func seedMargherita(t *testing.T, h http.Handler) (categoryID, productID int) {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/catalog/categories",
		domain.CreateCategoryRequest{Name: "Pizzas", Icon: "🍕"})
	require.Equal(t, http.StatusCreated, w.Code)
	cat := decodeBody[domain.Category](t, w)

	w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/sub000/catalog/categories/%d/products", cat.ID),
		domain.CreateProductRequest{Name: "Margherita", Price: 35.90})
	require.Equal(t, http.StatusCreated, w.Code)
	prod := decodeBody[domain.Product](t, w)
	return cat.ID, prod.ID
}

func TestCreateCategoryAndProduct(t *testing.T) {
	h := newTestServer()
	catID, prodID := seedMargherita(t, h)

	w := doJSON(t, h, http.MethodGet, "/api/v1/sub000/catalog/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := decodeBody[domain.CatalogSnapshot](t, w)
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, catID, snap.Categories[0].ID)
	require.Len(t, snap.Categories[0].Products, 1)
	assert.Equal(t, prodID, snap.Categories[0].Products[0].ID)
}

func TestCreateCategoryValidation(t *testing.T) {
	h := newTestServer()
	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/catalog/categories",
		domain.CreateCategoryRequest{Name: ""})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReorderCategoriesEndpoint(t *testing.T) {
	h := newTestServer()
	var ids []int
	for _, name := range []string{"A", "B", "C"} {
		w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/catalog/categories",
			domain.CreateCategoryRequest{Name: name})
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, decodeBody[domain.Category](t, w).ID)
	}

	w := doJSON(t, h, http.MethodPut, "/api/v1/sub000/catalog/categories/reorder",
		domain.ReorderRequest{DraggedID: ids[2], TargetID: ids[0]})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[struct {
		Categories []domain.Category `json:"categories"`
	}](t, w)
	require.Len(t, resp.Categories, 3)
	assert.Equal(t, "C", resp.Categories[0].Name)
	assert.Equal(t, []int{1, 2, 3}, []int{
		resp.Categories[0].Order, resp.Categories[1].Order, resp.Categories[2].Order,
	})
}

func TestCheckoutCashFlow(t *testing.T) {
	h := newTestServer()
	_, prodID := seedMargherita(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/orders/checkout", domain.CheckoutRequest{
		Customer:       domain.Customer{Name: "Ana"},
		OrderType:      domain.OrderTypeTakeout,
		PaymentMethod:  domain.PaymentCash,
		ReceivedAmount: 40.00,
		Lines:          []domain.CheckoutLine{{ProductID: prodID, Quantity: 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[domain.CheckoutResponse](t, w)
	assert.InDelta(t, 35.90, resp.Total, 1e-9)
	assert.InDelta(t, 4.10, resp.Change, 1e-9)
	assert.Equal(t, domain.StatusWaiting, resp.Status)

	// the order landed on the waiting column
	w = doJSON(t, h, http.MethodGet, "/api/v1/sub000/orders/?status=waiting", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[struct {
		Orders []domain.Order `json:"orders"`
	}](t, w)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, resp.OrderID, list.Orders[0].ID)
}

func TestCheckoutRepeatedLineAccumulates(t *testing.T) {
	h := newTestServer()
	_, prodID := seedMargherita(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/orders/checkout", domain.CheckoutRequest{
		Customer:      domain.Customer{Name: "Clara"},
		OrderType:     domain.OrderTypeTakeout,
		PaymentMethod: domain.PaymentCard,
		Lines: []domain.CheckoutLine{
			{ProductID: prodID, Quantity: 1},
			{ProductID: prodID, Quantity: 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[domain.CheckoutResponse](t, w)
	assert.InDelta(t, 3*35.90, resp.Total, 1e-9)

	w = doJSON(t, h, http.MethodGet, "/api/v1/sub000/orders/", nil)
	list := decodeBody[struct {
		Orders []domain.Order `json:"orders"`
	}](t, w)
	require.Len(t, list.Orders, 1)
	require.Len(t, list.Orders[0].Lines, 1, "identical lines merge into one")
	assert.Equal(t, 3, list.Orders[0].Lines[0].Quantity)
}

func TestCheckoutDeliveryWithoutAddress(t *testing.T) {
	h := newTestServer()
	_, prodID := seedMargherita(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/orders/checkout", domain.CheckoutRequest{
		Customer:      domain.Customer{Name: "Bruno"},
		OrderType:     domain.OrderTypeDelivery,
		PaymentMethod: domain.PaymentCard,
		Lines:         []domain.CheckoutLine{{ProductID: prodID, Quantity: 1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	h := newTestServer()
	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/orders/checkout", domain.CheckoutRequest{
		OrderType:     domain.OrderTypeTakeout,
		PaymentMethod: domain.PaymentCard,
		Lines:         []domain.CheckoutLine{{ProductID: 404, Quantity: 1}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveOrderEndpointEnforcesTransitions(t *testing.T) {
	h := newTestServer()
	_, prodID := seedMargherita(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/v1/sub000/orders/checkout", domain.CheckoutRequest{
		Customer:      domain.Customer{Name: "Ana", Address: "Rua A, 10"},
		OrderType:     domain.OrderTypeDelivery,
		PaymentMethod: domain.PaymentCard,
		Lines:         []domain.CheckoutLine{{ProductID: prodID, Quantity: 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody[domain.CheckoutResponse](t, w).OrderID

	// waiting -> delivered skips the whole flow
	w = doJSON(t, h, http.MethodPut, "/api/v1/sub000/orders/"+orderID+"/status",
		domain.MoveOrderRequest{Status: domain.StatusDelivered})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, h, http.MethodPut, "/api/v1/sub000/orders/"+orderID+"/status",
		domain.MoveOrderRequest{Status: domain.StatusKitchen})
	require.Equal(t, http.StatusOK, w.Code)
	moved := decodeBody[domain.Order](t, w)
	assert.Equal(t, domain.StatusKitchen, moved.Status)
}

func TestMoveOrderUnknownIDTolerated(t *testing.T) {
	h := newTestServer()
	w := doJSON(t, h, http.MethodPut, "/api/v1/sub000/orders/ghost/status",
		domain.MoveOrderRequest{Status: domain.StatusKitchen})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[map[string]any](t, w)
	assert.Equal(t, false, resp["moved"])
}

func TestCopyAdditionalGroupEndpoint(t *testing.T) {
	h := newTestServer()
	catID, srcID := seedMargherita(t, h)

	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/sub000/catalog/categories/%d/products", catID),
		domain.CreateProductRequest{Name: "Calabresa", Price: 38.90})
	require.Equal(t, http.StatusCreated, w.Code)
	targetID := decodeBody[domain.Product](t, w).ID

	w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/sub000/catalog/products/%d/additional-groups", srcID),
		domain.CreateAdditionalGroupRequest{
			Name:  "Borders",
			Items: []domain.AdditionalItemInput{{Name: "Catupiry", Price: 6}, {Name: "", Price: 1}},
		})
	require.Equal(t, http.StatusCreated, w.Code)
	group := decodeBody[domain.AdditionalGroup](t, w)
	require.Len(t, group.Items, 1, "blank items are dropped")

	w = doJSON(t, h, http.MethodPost, "/api/v1/sub000/catalog/additional-groups/copy",
		domain.CopyAdditionalGroupRequest{
			GroupID:          group.ID,
			SourceProductID:  srcID,
			TargetProductIDs: []int{targetID},
		})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/v1/sub000/catalog/", nil)
	snap := decodeBody[domain.CatalogSnapshot](t, w)
	var target domain.Product
	for _, p := range snap.Categories[0].Products {
		if p.ID == targetID {
			target = p
		}
	}
	require.Len(t, target.Additionals, 1)
	assert.Equal(t, "Borders", target.Additionals[0].Name)
}
