package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/models"
)

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	SearchProducts(ctx context.Context, keyword string, limit int) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SoftDelete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.db.WithContext(ctx).Model(&models.Product{}).Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts matches active products whose name or category
// contains the keyword, case-insensitively, ordered by name.
func (p *productRepository) SearchProducts(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	var products []models.Product
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", searchKeyword, searchKeyword).
		Order("name").
		Limit(limit).
		Find(&products).Error

	return products, err
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

// SoftDelete deactivates the product so past invoices keep their rows.
func (p *productRepository) SoftDelete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}
