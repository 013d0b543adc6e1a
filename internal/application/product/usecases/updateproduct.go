package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/product"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

// UpdateProductCommand carries partial updates; nil pointers leave the field
// untouched.
type UpdateProductCommand struct {
	ProductID      uint
	Name           *string
	Description    *string
	Price          *float64
	Category       *string
	Brand          *string
	SKU            *string
	Tags           []string
	Images         []string
	Specifications map[string]string
	IsActive       *bool
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	existing, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, errors.NewValidationError("product name cannot be empty")
		}
		existing.Name = *cmd.Name
	}
	if cmd.Description != nil {
		existing.Description = *cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price < 0 {
			return nil, errors.NewValidationError("product price cannot be negative")
		}
		existing.Price = *cmd.Price
	}
	if cmd.Category != nil {
		existing.Category = *cmd.Category
	}
	if cmd.Brand != nil {
		existing.Brand = *cmd.Brand
	}
	if cmd.SKU != nil && *cmd.SKU != existing.SKU {
		if *cmd.SKU != "" {
			other, err := uc.productRepo.GetBySKU(ctx, *cmd.SKU)
			if err != nil && !errors.IsNotFoundError(err) {
				return nil, fmt.Errorf("failed to check SKU: %w", err)
			}
			if other != nil && other.ID != existing.ID {
				return nil, errors.NewConflictError("Product with this SKU already exists")
			}
		}
		existing.SKU = *cmd.SKU
	}
	if cmd.Tags != nil {
		existing.Tags = cmd.Tags
	}
	if cmd.Images != nil {
		existing.Images = cmd.Images
	}
	if cmd.Specifications != nil {
		existing.Specifications = cmd.Specifications
	}
	if cmd.IsActive != nil {
		existing.IsActive = *cmd.IsActive
	}

	existing.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update product", "product_id", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.logger.Infow("product updated", "product_id", cmd.ProductID)
	return existing, nil
}
