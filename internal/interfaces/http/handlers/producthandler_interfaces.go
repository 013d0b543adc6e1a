package handlers

import (
	"context"

	"adminkit/internal/application/product/usecases"
	"adminkit/internal/domain/product"
)

// Use case interfaces for ProductHandler, so unit tests can substitute mocks.

type listProductsUseCase interface {
	Execute(ctx context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error)
}

type getProductUseCase interface {
	Execute(ctx context.Context, productID uint) (*product.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type createProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProductCommand) (*product.Product, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*product.Product, error)
}

type updateStockUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateStockCommand) (*product.Product, error)
}

type deleteProductUseCase interface {
	Execute(ctx context.Context, productID uint) error
}
