package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/product"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type CreateProductCommand struct {
	Name           string
	Description    string
	Price          float64
	Category       string
	Brand          string
	Stock          int
	SKU            string
	Tags           []string
	Images         []string
	Specifications map[string]string
}

type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if cmd.SKU != "" {
		existing, err := uc.productRepo.GetBySKU(ctx, cmd.SKU)
		if err != nil && !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to check SKU", "sku", cmd.SKU, "error", err)
			return nil, fmt.Errorf("failed to check SKU: %w", err)
		}
		if existing != nil {
			return nil, errors.NewConflictError("Product with this SKU already exists")
		}
	}

	newProduct, err := product.NewProduct(cmd.Name, cmd.Description, cmd.Price, cmd.Category, cmd.Brand, cmd.Stock, cmd.SKU)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newProduct.Tags = cmd.Tags
	newProduct.Images = cmd.Images
	newProduct.Specifications = cmd.Specifications

	if err := uc.productRepo.Create(ctx, newProduct); err != nil {
		uc.logger.Errorw("failed to create product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.logger.Infow("product created", "product_id", newProduct.ID, "name", newProduct.Name)
	return newProduct, nil
}
