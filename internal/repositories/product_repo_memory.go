package repositories

import (
	"fmt"
	"sync"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make([]models.Product, 0),
	}
}

// GetAll returns a snapshot of all products.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(), nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	product := r.products[i]
	return &product, nil
}

// Create appends a new product. The caller assigns the ID.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(product.ID) >= 0 {
		return fmt.Errorf("product with ID %s already exists", product.ID)
	}
	r.products = append(r.products, *product)
	return nil
}

// Update modifies an existing product in place.
func (r *MemoryProductRepository) Update(id string, changes models.ProductChanges) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s not found for update: %w", id, ErrProductNotFound)
	}

	p := &r.products[i]
	p.Name = changes.Name
	p.Details = changes.Details
	p.Price = changes.Price
	if changes.ProductImage != "" {
		p.ProductImage = changes.ProductImage
	}

	updated := *p
	return &updated, nil
}

// Delete removes a product by its ID without reordering the rest.
func (r *MemoryProductRepository) Delete(id string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s not found for deletion: %w", id, ErrProductNotFound)
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return r.snapshot(), nil
}

func (r *MemoryProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryProductRepository) snapshot() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}
