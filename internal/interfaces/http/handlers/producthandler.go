package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adminkit/internal/application/product/usecases"
	"adminkit/internal/shared/logger"
	"adminkit/internal/shared/utils"
)

// ProductHandler handles the product catalog surface.
type ProductHandler struct {
	listUC   listProductsUseCase
	getUC    getProductUseCase
	createUC createProductUseCase
	updateUC updateProductUseCase
	stockUC  updateStockUseCase
	deleteUC deleteProductUseCase
	logger   logger.Interface
}

func NewProductHandler(
	listUC listProductsUseCase,
	getUC getProductUseCase,
	createUC createProductUseCase,
	updateUC updateProductUseCase,
	stockUC updateStockUseCase,
	deleteUC deleteProductUseCase,
	log logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		stockUC:  stockUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

type CreateProductRequest struct {
	Name           string            `json:"name" binding:"required,max=200"`
	Description    string            `json:"description"`
	Price          float64           `json:"price" binding:"gte=0"`
	Category       string            `json:"category" binding:"required,max=100"`
	Brand          string            `json:"brand" binding:"max=100"`
	Stock          int               `json:"stock" binding:"gte=0"`
	SKU            string            `json:"sku" binding:"max=100"`
	Tags           []string          `json:"tags"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
}

type UpdateProductRequest struct {
	Name           *string           `json:"name" binding:"omitempty,max=200"`
	Description    *string           `json:"description"`
	Price          *float64          `json:"price" binding:"omitempty,gte=0"`
	Category       *string           `json:"category" binding:"omitempty,max=100"`
	Brand          *string           `json:"brand" binding:"omitempty,max=100"`
	SKU            *string           `json:"sku" binding:"omitempty,max=100"`
	Tags           []string          `json:"tags"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	IsActive       *bool             `json:"isActive"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"omitempty,gte=0"`
	Delta *int `json:"delta"`
}

// ListProducts handles GET /api/products.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page := utils.ParsePageParams(c)

	query := usecases.ListProductsQuery{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Brand:     c.Query("brand"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page.Page,
		Limit:     page.Limit,
	}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MaxPrice = &v
		}
	}
	if raw := c.Query("inStock"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			query.InStock = &v
		}
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"products":   NewProductResponseList(result.Products),
		"pagination": utils.NewPagination(result.Total, page.Page, page.Limit),
	})
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), productID)
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewProductResponse(p))
}

// ListCategories handles GET /api/products/categories.
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.getUC.ListCategories(c.Request.Context())
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"categories": categories})
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create product request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProductCommand{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Brand:          req.Brand,
		Stock:          req.Stock,
		SKU:            req.SKU,
		Tags:           req.Tags,
		Images:         req.Images,
		Specifications: req.Specifications,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Product created successfully", NewProductResponse(created))
}

// UpdateProduct handles PUT /api/products/:id. Absent fields are untouched.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update product request", "product_id", productID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateProductCommand{
		ProductID:      productID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Brand:          req.Brand,
		SKU:            req.SKU,
		Tags:           req.Tags,
		Images:         req.Images,
		Specifications: req.Specifications,
		IsActive:       req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", NewProductResponse(updated))
}

// UpdateStock handles PATCH /api/products/:id/stock. Accepts an absolute
// stock count or a signed delta.
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}
	if req.Stock == nil && req.Delta == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Either stock or delta is required")
		return
	}

	updated, err := h.stockUC.Execute(c.Request.Context(), usecases.UpdateStockCommand{
		ProductID: productID,
		Stock:     req.Stock,
		Delta:     req.Delta,
	})
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock updated successfully", NewProductResponse(updated))
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), productID); err != nil {
		utils.ErrorResponseFromErr(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
