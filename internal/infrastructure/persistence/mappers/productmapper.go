package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"adminkit/internal/domain/product"
	"adminkit/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between Product domain entities and persistence models.
type ProductMapper interface {
	ToModel(entity *product.Product) (*models.ProductModel, error)
	ToDomain(model *models.ProductModel) (*product.Product, error)
}

type productMapper struct{}

// NewProductMapper creates a new ProductMapper.
func NewProductMapper() ProductMapper {
	return &productMapper{}
}

// ToModel converts a domain entity to a persistence model.
func (m *productMapper) ToModel(entity *product.Product) (*models.ProductModel, error) {
	if entity == nil {
		return nil, nil
	}

	tags, err := marshalJSON(entity.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	images, err := marshalJSON(entity.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal images: %w", err)
	}
	specs, err := marshalJSON(entity.Specifications)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specifications: %w", err)
	}

	return &models.ProductModel{
		ID:             entity.ID,
		Name:           entity.Name,
		Description:    entity.Description,
		Price:          entity.Price,
		Category:       entity.Category,
		Brand:          entity.Brand,
		Stock:          entity.Stock,
		SKU:            entity.SKU,
		Tags:           tags,
		Images:         images,
		Specifications: specs,
		IsActive:       entity.IsActive,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}, nil
}

// ToDomain converts a persistence model to a domain entity.
func (m *productMapper) ToDomain(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal images: %w", err)
		}
	}
	var specs map[string]string
	if len(model.Specifications) > 0 {
		if err := json.Unmarshal(model.Specifications, &specs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal specifications: %w", err)
		}
	}

	return &product.Product{
		ID:             model.ID,
		Name:           model.Name,
		Description:    model.Description,
		Price:          model.Price,
		Category:       model.Category,
		Brand:          model.Brand,
		Stock:          model.Stock,
		SKU:            model.SKU,
		Tags:           tags,
		Images:         images,
		Specifications: specs,
		IsActive:       model.IsActive,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return nil, nil
		}
	case map[string]string:
		if t == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}
