package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vishubh/bizbilling/app/models"
)

type CustomerRepositoryImpl interface {
	GetOrCreateByEmail(ctx context.Context, email string, defaults *models.Customer) (*models.Customer, bool, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepositoryImpl {
	return &customerRepository{db}
}

// GetOrCreateByEmail looks a customer up by email and creates one from
// the defaults when none exists. The bool reports whether a row was
// created.
func (c *customerRepository) GetOrCreateByEmail(ctx context.Context, email string, defaults *models.Customer) (*models.Customer, bool, error) {
	var customer models.Customer
	err := c.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if err == nil {
		return &customer, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	defaults.Email = email
	if err := c.db.WithContext(ctx).Create(defaults).Error; err != nil {
		return nil, false, err
	}
	return defaults, true, nil
}

func (c *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	return count, err
}
