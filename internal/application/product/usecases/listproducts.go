package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/product"
	"adminkit/internal/shared/logger"
)

type ListProductsQuery struct {
	Search    string
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	InStock   *bool
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type ListProductsResult struct {
	Products []*product.Product
	Total    int64
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	products, total, err := uc.productRepo.List(ctx, product.ListFilter{
		Search:    query.Search,
		Category:  query.Category,
		Brand:     query.Brand,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		InStock:   query.InStock,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsResult{Products: products, Total: total}, nil
}
