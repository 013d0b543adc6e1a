package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/product"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type UpdateStockCommand struct {
	ProductID uint
	// Stock sets an absolute count when non-nil.
	Stock *int
	// Delta adjusts the current count when Stock is nil.
	Delta *int
}

type UpdateStockUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateStockUseCase(productRepo product.Repository, logger logger.Interface) *UpdateStockUseCase {
	return &UpdateStockUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateStockUseCase) Execute(ctx context.Context, cmd UpdateStockCommand) (*product.Product, error) {
	existing, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	switch {
	case cmd.Stock != nil:
		if *cmd.Stock < 0 {
			return nil, errors.NewValidationError("product stock cannot be negative")
		}
		existing.Stock = *cmd.Stock
		existing.UpdatedAt = time.Now().UTC()
	case cmd.Delta != nil:
		if err := existing.AdjustStock(*cmd.Delta); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	default:
		return nil, errors.NewValidationError("stock or delta is required")
	}

	if err := uc.productRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update stock", "product_id", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	uc.logger.Infow("stock updated", "product_id", cmd.ProductID, "stock", existing.Stock)
	return existing, nil
}
