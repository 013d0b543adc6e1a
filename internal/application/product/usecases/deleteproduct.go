package usecases

import (
	"context"

	"adminkit/internal/domain/product"
	"adminkit/internal/shared/logger"
)

type DeleteProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(productRepo product.Repository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uint) error {
	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	uc.logger.Infow("product deleted", "product_id", productID)
	return nil
}
