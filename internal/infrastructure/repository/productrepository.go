package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"adminkit/internal/domain/product"
	"adminkit/internal/infrastructure/persistence/mappers"
	"adminkit/internal/infrastructure/persistence/models"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

var allowedProductOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"category":   true,
	"brand":      true,
	"stock":      true,
	"created_at": true,
	"updated_at": true,
}

// ProductRepository implements the product repository interface backed by GORM.
type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB, logger logger.Interface) product.Repository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

func (r *ProductRepository) Create(ctx context.Context, entity *product.Product) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map product entity to model", "error", err)
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product in database", "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}

	entity.ID = model.ID

	r.logger.Infow("product created successfully", "id", model.ID, "name", model.Name)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Product not found")
		}
		r.logger.Errorw("failed to get product by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		r.logger.Errorw("failed to map product model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map product: %w", err)
	}
	return entity, nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Product not found")
		}
		r.logger.Errorw("failed to get product by SKU", "sku", sku, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map product: %w", err)
	}
	return entity, nil
}

func (r *ProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	var productModels []*models.ProductModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.InStock != nil {
		if *filter.InStock {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock = 0")
		}
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	sortBy := filter.SortBy
	if sortBy == "" || !allowedProductOrderByFields[sortBy] {
		query = query.Order("created_at DESC")
	} else {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", sortBy, order))
	}

	offset := (filter.Page - 1) * filter.Limit
	query = query.Offset(offset).Limit(filter.Limit)

	if err := query.Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	entities := make([]*product.Product, 0, len(productModels))
	for _, model := range productModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map product model to entity, skipping", "id", model.ID, "error", err)
			continue
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func (r *ProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *ProductRepository) Update(ctx context.Context, entity *product.Product) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map product entity to model", "id", entity.ID, "error", err)
		return fmt.Errorf("failed to map product entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"description":    model.Description,
			"price":          model.Price,
			"category":       model.Category,
			"brand":          model.Brand,
			"stock":          model.Stock,
			"sku":            model.SKU,
			"tags":           model.Tags,
			"images":         model.Images,
			"specifications": model.Specifications,
			"is_active":      model.IsActive,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update product", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update product: %w", result.Error)
	}

	r.logger.Infow("product updated successfully", "id", model.ID)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete product", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Product not found")
	}

	r.logger.Infow("product deleted successfully", "id", id)
	return nil
}
