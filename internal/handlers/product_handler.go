package handlers

import (
	"errors"
	"log"

	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/uploads"

	"github.com/gofiber/fiber/v2"
)

// NotFoundMessage is the plain-text body sent when a product ID does not exist.
const NotFoundMessage = "Product with given id was not found"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns every product in insertion order.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return internalError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID returns a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		return h.respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product from a JSON or multipart body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, image, err := parseProductRequest(c)
	if err != nil {
		log.Printf("Error parsing create request: %v", err)
		return badRequest(c, err)
	}

	product, err := h.service.CreateProduct(input, image)
	if err != nil {
		return h.respondError(c, "Could not create product", err)
	}
	return c.JSON(product)
}

// HandleUpdateProduct updates an existing product in place.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	input, image, err := parseProductRequest(c)
	if err != nil {
		log.Printf("Error parsing update request for product %s: %v", productID, err)
		return badRequest(c, err)
	}

	product, err := h.service.UpdateProduct(productID, input, image)
	if err != nil {
		return h.respondError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product and returns the remaining ones.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	remaining, err := h.service.DeleteProduct(productID)
	if err != nil {
		return h.respondError(c, "Could not delete product", err)
	}
	return c.JSON(remaining)
}

func (h *ProductHandler) respondError(c *fiber.Ctx, message string, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).SendString(NotFoundMessage)
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
			"details": []*services.ValidationError{validationErr},
		})
	case errors.Is(err, uploads.ErrFileTooLarge):
		log.Printf("Rejected upload: %v", err)
		return c.Status(fiber.StatusRequestEntityTooLarge).SendString("File too large")
	default:
		log.Printf("%s: %v", message, err)
		return internalError(c, message, err)
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func internalError(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
