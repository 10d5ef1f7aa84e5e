package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokshlabs/moksh-api/internal/config"
	"github.com/mokshlabs/moksh-api/internal/models"
	"github.com/mokshlabs/moksh-api/internal/rowmap"
	"github.com/mokshlabs/moksh-api/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{Env: "test", JWTSecret: "test-secret"}
}

// --- Mock product store ---

type mockProductStore struct {
	items      []rowmap.Record
	err        error
	lastParams store.ListProductsParams
}

func newTestProductRecord(id string, active bool) rowmap.Record {
	return rowmap.Record{
		"id":              id,
		"name":            "Product " + id,
		"description":     nil,
		"price":           750.0,
		"category_id":     "cat-1",
		"images":          []string{},
		"whatsapp_number": nil,
		"is_active":       active,
		"created_at":      time.Now(),
		"updated_at":      time.Now(),
		"category":        rowmap.Record{"id": "cat-1", "name": "Kurti", "slug": "kurti"},
	}
}

func (m *mockProductStore) ListProducts(params store.ListProductsParams) ([]rowmap.Record, int, error) {
	m.lastParams = params
	if m.err != nil {
		return nil, 0, m.err
	}
	page, limit := store.NormalizePageLimit(params.Page, params.Limit)
	start := (page - 1) * limit
	if start > len(m.items) {
		start = len(m.items)
	}
	end := start + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[start:end], len(m.items), nil
}

func (m *mockProductStore) GetProduct(id string) (rowmap.Record, error) {
	for _, item := range m.items {
		if item["id"] == id {
			return item, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockProductStore) LatestProduct() (rowmap.Record, error) {
	if len(m.items) == 0 {
		return nil, nil
	}
	return m.items[0], nil
}

func (m *mockProductStore) CreateProduct(params store.CreateProductParams) (rowmap.Record, error) {
	rec := newTestProductRecord("new", params.IsActive)
	rec["name"] = params.Name
	return rec, nil
}

func (m *mockProductStore) UpdateProduct(id string, params store.UpdateProductParams) (rowmap.Record, error) {
	return m.GetProduct(id)
}

func (m *mockProductStore) DeleteProduct(id string) error {
	_, err := m.GetProduct(id)
	return err
}

func (m *mockProductStore) ToggleProductVisibility(id string) (rowmap.Record, error) {
	for _, item := range m.items {
		if item["id"] == id {
			item["is_active"] = !item["is_active"].(bool)
			return item, nil
		}
	}
	return nil, store.ErrNotFound
}

// --- Mock category store ---

type mockCategoryStore struct {
	categories []models.Category
	deleteErr  error
}

func (m *mockCategoryStore) ListCategories() ([]models.Category, error) {
	return m.categories, nil
}

func (m *mockCategoryStore) GetCategory(id string) (*models.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockCategoryStore) CreateCategory(name string, description *string, order int) (*models.Category, error) {
	return &models.Category{ID: "new", Name: name, Slug: store.Slugify(name), Description: description, Order: order}, nil
}

func (m *mockCategoryStore) UpdateCategory(id string, params store.UpdateCategoryParams) (*models.Category, error) {
	return m.GetCategory(id)
}

func (m *mockCategoryStore) DeleteCategory(id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, err := m.GetCategory(id); err != nil {
		return err
	}
	return nil
}

// --- Helpers ---

type envelope struct {
	Success bool                   `json:"success"`
	Data    json.RawMessage        `json:"data"`
	Error   map[string]interface{} `json:"error"`
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func newProductRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.GET("/products", h.ListProducts)
	router.GET("/products/latest", h.LatestProduct)
	router.GET("/products/:id", h.GetProduct)
	router.POST("/products", h.CreateProduct)
	router.PATCH("/products/:id/visibility", h.ToggleProductVisibility)
	return router
}

// --- Tests ---

func TestListProductsEnvelopeAndPagination(t *testing.T) {
	products := &mockProductStore{}
	for i := 0; i < 25; i++ {
		products.items = append(products.items, newTestProductRecord(string(rune('a'+i)), true))
	}
	h := &Handlers{Cfg: testConfig(), Products: products}
	router := newProductRouter(h)

	w, env := doRequest(t, router, http.MethodGet, "/products?page=2&limit=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		Items []map[string]interface{} `json:"items"`
		Total int                      `json:"total"`
		Page  int                      `json:"page"`
		Limit int                      `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, 25, data.Total)
	assert.Equal(t, 2, data.Page)
	assert.Equal(t, 10, data.Limit)
	assert.LessOrEqual(t, len(data.Items), data.Limit)
	assert.LessOrEqual(t, len(data.Items), data.Total)

	// Keys are camelCase after normalization, nested category included.
	first := data.Items[0]
	assert.Contains(t, first, "isActive")
	assert.Contains(t, first, "categoryId")
	assert.NotContains(t, first, "is_active")
	category, ok := first["category"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "kurti", category["slug"])
}

func TestListProductsParsesFilters(t *testing.T) {
	products := &mockProductStore{}
	h := &Handlers{Cfg: testConfig(), Products: products}
	router := newProductRouter(h)

	doRequest(t, router, http.MethodGet,
		"/products?search=kurti&category=kurti&isActive=true&minPrice=500&maxPrice=1000&page=3&limit=5", "")

	params := products.lastParams
	assert.Equal(t, "kurti", params.Search)
	assert.Equal(t, "kurti", params.Category)
	require.NotNil(t, params.IsActive)
	assert.True(t, *params.IsActive)
	require.NotNil(t, params.MinPrice)
	assert.Equal(t, "500", params.MinPrice.String())
	require.NotNil(t, params.MaxPrice)
	assert.Equal(t, "1000", params.MaxPrice.String())
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 5, params.Limit)
}

func TestListProductsIgnoresUnparseableFilters(t *testing.T) {
	products := &mockProductStore{}
	h := &Handlers{Cfg: testConfig(), Products: products}
	router := newProductRouter(h)

	doRequest(t, router, http.MethodGet, "/products?minPrice=abc&isActive=maybe", "")

	assert.Nil(t, products.lastParams.MinPrice)
	assert.Nil(t, products.lastParams.IsActive)
}

func TestGetProductNotFound(t *testing.T) {
	h := &Handlers{Cfg: testConfig(), Products: &mockProductStore{}}
	router := newProductRouter(h)

	w, env := doRequest(t, router, http.MethodGet, "/products/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Error["code"])
}

func TestLatestProductEmptyCatalogue(t *testing.T) {
	h := &Handlers{Cfg: testConfig(), Products: &mockProductStore{}}
	router := newProductRouter(h)

	w, env := doRequest(t, router, http.MethodGet, "/products/latest", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
}

func TestCreateProductRequiresName(t *testing.T) {
	h := &Handlers{Cfg: testConfig(), Products: &mockProductStore{}, Categories: &mockCategoryStore{}}
	router := newProductRouter(h)

	w, env := doRequest(t, router, http.MethodPost, "/products", `{"categoryId": "cat-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error["code"])
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	h := &Handlers{Cfg: testConfig(), Products: &mockProductStore{}, Categories: &mockCategoryStore{}}
	router := newProductRouter(h)

	w, env := doRequest(t, router, http.MethodPost, "/products",
		`{"name": "Silk Kurti", "categoryId": "nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error["code"])
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	categories := &mockCategoryStore{categories: []models.Category{{ID: "cat-1", Name: "Kurti", Slug: "kurti"}}}
	h := &Handlers{Cfg: testConfig(), Products: &mockProductStore{}, Categories: categories}
	router := newProductRouter(h)

	w, _ := doRequest(t, router, http.MethodPost, "/products",
		`{"name": "Silk Kurti", "categoryId": "cat-1", "price": -5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleVisibilityTwiceRestoresState(t *testing.T) {
	products := &mockProductStore{items: []rowmap.Record{newTestProductRecord("p1", true)}}
	h := &Handlers{Cfg: testConfig(), Products: products}
	router := newProductRouter(h)

	_, env := doRequest(t, router, http.MethodPatch, "/products/p1/visibility", "")
	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, false, first["isActive"])

	_, env = doRequest(t, router, http.MethodPatch, "/products/p1/visibility", "")
	var second map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, true, second["isActive"])
}
