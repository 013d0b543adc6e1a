package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminkit/internal/application/product/usecases"
	"adminkit/internal/domain/product"
	"adminkit/internal/interfaces/http/handlers/testutil"
	"adminkit/internal/shared/errors"
)

type mockListProductsUC struct {
	result   *usecases.ListProductsResult
	err      error
	gotQuery usecases.ListProductsQuery
}

func (m *mockListProductsUC) Execute(ctx context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockGetProductUC struct {
	product    *product.Product
	categories []string
	err        error
}

func (m *mockGetProductUC) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	return m.product, m.err
}

func (m *mockGetProductUC) ListCategories(ctx context.Context) ([]string, error) {
	return m.categories, m.err
}

type mockCreateProductUC struct {
	result *product.Product
	err    error
}

func (m *mockCreateProductUC) Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*product.Product, error) {
	return m.result, m.err
}

type mockUpdateProductUC struct {
	result *product.Product
	err    error
}

func (m *mockUpdateProductUC) Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*product.Product, error) {
	return m.result, m.err
}

type mockUpdateStockUC struct {
	result *product.Product
	err    error
	gotCmd usecases.UpdateStockCommand
}

func (m *mockUpdateStockUC) Execute(ctx context.Context, cmd usecases.UpdateStockCommand) (*product.Product, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteProductUC struct {
	err error
}

func (m *mockDeleteProductUC) Execute(ctx context.Context, productID uint) error {
	return m.err
}

func testProduct() *product.Product {
	return &product.Product{
		ID:       3,
		Name:     "Mechanical Keyboard",
		Price:    129.90,
		Category: "peripherals",
		Brand:    "Keychron",
		Stock:    5,
		SKU:      "KB-75",
		IsActive: true,
	}
}

func newProductHandler(
	listUC listProductsUseCase,
	getUC getProductUseCase,
	createUC createProductUseCase,
	stockUC updateStockUseCase,
) *ProductHandler {
	return NewProductHandler(listUC, getUC, createUC, &mockUpdateProductUC{}, stockUC, &mockDeleteProductUC{}, testutil.NewMockLogger())
}

func TestProductHandler_ListProducts_Filters(t *testing.T) {
	listUC := &mockListProductsUC{
		result: &usecases.ListProductsResult{Products: []*product.Product{testProduct()}, Total: 1},
	}
	h := newProductHandler(listUC, &mockGetProductUC{}, &mockCreateProductUC{}, &mockUpdateStockUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/products", nil)
	testutil.SetQueryParams(c, map[string]string{
		"search":   "keyboard",
		"category": "peripherals",
		"minPrice": "50",
		"maxPrice": "200",
		"inStock":  "true",
	})
	h.ListProducts(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "keyboard", listUC.gotQuery.Search)
	require.NotNil(t, listUC.gotQuery.MinPrice)
	assert.Equal(t, 50.0, *listUC.gotQuery.MinPrice)
	require.NotNil(t, listUC.gotQuery.InStock)
	assert.True(t, *listUC.gotQuery.InStock)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	getUC := &mockGetProductUC{err: errors.NewNotFoundError("Product not found")}
	h := newProductHandler(&mockListProductsUC{}, getUC, &mockCreateProductUC{}, &mockUpdateStockUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/products/99", nil)
	testutil.SetURLParam(c, "id", "99")
	h.GetProduct(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_CreateProduct_DuplicateSKU(t *testing.T) {
	createUC := &mockCreateProductUC{err: errors.NewConflictError("Product with this SKU already exists")}
	h := newProductHandler(&mockListProductsUC{}, &mockGetProductUC{}, createUC, &mockUpdateStockUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/products", map[string]any{
		"name":     "Mechanical Keyboard",
		"price":    129.90,
		"category": "peripherals",
		"sku":      "KB-75",
	})
	h.CreateProduct(c)

	require.Equal(t, http.StatusConflict, w.Code)
	resp, err := testutil.ParseResponse(w)
	require.NoError(t, err)
	assert.Equal(t, "Product with this SKU already exists", resp.Message)
}

func TestProductHandler_UpdateStock_Delta(t *testing.T) {
	stockUC := &mockUpdateStockUC{result: testProduct()}
	h := newProductHandler(&mockListProductsUC{}, &mockGetProductUC{}, &mockCreateProductUC{}, stockUC)

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/products/3/stock", map[string]any{
		"delta": -2,
	})
	testutil.SetURLParam(c, "id", "3")
	h.UpdateStock(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stockUC.gotCmd.Delta)
	assert.Equal(t, -2, *stockUC.gotCmd.Delta)
	assert.Nil(t, stockUC.gotCmd.Stock)
}

func TestProductHandler_UpdateStock_RequiresStockOrDelta(t *testing.T) {
	h := newProductHandler(&mockListProductsUC{}, &mockGetProductUC{}, &mockCreateProductUC{}, &mockUpdateStockUC{})

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/products/3/stock", map[string]any{})
	testutil.SetURLParam(c, "id", "3")
	h.UpdateStock(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_ListCategories(t *testing.T) {
	getUC := &mockGetProductUC{categories: []string{"laptops", "peripherals"}}
	h := newProductHandler(&mockListProductsUC{}, getUC, &mockCreateProductUC{}, &mockUpdateStockUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/products/categories", nil)
	h.ListCategories(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp, err := testutil.ParseResponse(w)
	require.NoError(t, err)

	var data struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, []string{"laptops", "peripherals"}, data.Categories)
}
