package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned when no product matches the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ErrMissingID is returned when a product is stored without an ID.
var ErrMissingID = errors.New("product ID is required")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, changes models.ProductChanges) (*models.Product, error)
	// Delete removes the product and returns the products that remain.
	Delete(id string) ([]models.Product, error)
}
