package services

import (
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/uploads"

	"github.com/google/uuid"
)

// ImageStore prepares and persists uploaded product images.
type ImageStore interface {
	Prepare(fh *multipart.FileHeader) (dest string, ok bool, err error)
	Save(fh *multipart.FileHeader, dest string) error
}

var _ ImageStore = (*uploads.Storage)(nil)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	images    ImageStore
	validator *ProductValidator
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, images ImageStore, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		images:    images,
		validator: NewProductValidator(),
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the input, stores the image and appends a new product.
// image may be nil; a file of a disallowed type is treated as missing.
func (s *ProductService) CreateProduct(input models.ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	imagePath, ok, err := s.prepareImage(image)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateCreate(input, imagePath); err != nil {
		return nil, err
	}
	if ok {
		if err := s.images.Save(image, imagePath); err != nil {
			return nil, err
		}
	}

	product := &models.Product{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Details:      input.Details,
		Price:        input.Price,
		ProductImage: imagePath,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publish(EventProductCreated, *product)
	return product, nil
}

// UpdateProduct replaces the name, details and price of an existing product.
// The image is replaced only when an accepted file is supplied.
func (s *ProductService) UpdateProduct(id string, input models.ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	imagePath, ok, err := s.prepareImage(image)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateUpdate(input, imagePath); err != nil {
		return nil, err
	}
	if ok {
		if err := s.images.Save(image, imagePath); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(id, models.ProductChanges{
		Name:         input.Name,
		Details:      input.Details,
		Price:        input.Price,
		ProductImage: imagePath,
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventProductUpdated, *updated)
	return updated, nil
}

// DeleteProduct deletes a product by its ID and returns the remaining products.
func (s *ProductService) DeleteProduct(id string) ([]models.Product, error) {
	deleted, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	remaining, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}

	s.publish(EventProductDeleted, *deleted)
	return remaining, nil
}

func (s *ProductService) prepareImage(image *multipart.FileHeader) (string, bool, error) {
	if image == nil || s.images == nil {
		return "", false, nil
	}
	return s.images.Prepare(image)
}

func (s *ProductService) publish(event string, product models.Product) {
	if s.publisher == nil {
		return
	}
	body, err := encodeProductEvent(event, product, time.Now())
	if err != nil {
		log.Printf("Failed to marshal %s event for product %s: %v", event, product.ID, err)
		return
	}
	if err := s.publisher.Publish(event, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
