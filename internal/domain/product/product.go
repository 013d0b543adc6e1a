package product

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Product is a catalog item managed through the admin surface.
type Product struct {
	ID             uint
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
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProduct validates required fields and builds a product.
func NewProduct(name, description string, price float64, category, brand string, stock int, sku string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}
	if stock < 0 {
		return nil, fmt.Errorf("product stock cannot be negative")
	}
	now := time.Now()
	return &Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Category:    category,
		Brand:       brand,
		Stock:       stock,
		SKU:         strings.TrimSpace(sku),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// InStock reports whether any units remain.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// AdjustStock applies a signed delta and rejects adjustments
// that would drive the count below zero.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return fmt.Errorf("insufficient stock: have %d, requested %d", p.Stock, -delta)
	}
	p.Stock = next
	p.UpdatedAt = time.Now()
	return nil
}

// ListFilter narrows product listings.
type ListFilter struct {
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

// Repository persists products.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
}
