package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/product"
	"adminkit/internal/shared/logger"
)

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, productID uint) (*product.Product, error) {
	return uc.productRepo.GetByID(ctx, productID)
}

// ListCategories returns the distinct product categories in use.
func (uc *GetProductUseCase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := uc.productRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
