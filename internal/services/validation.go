package services

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes the first rule a payload failed.
type ValidationError struct {
	Message string   `json:"message"`
	Path    []string `json:"path"`
	Type    string   `json:"type"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// schemaKeys are the only body keys a product payload may carry.
var schemaKeys = map[string]bool{
	"name":         true,
	"details":      true,
	"price":        true,
	"productImage": true,
}

// createSchema is the shape a new product must satisfy.
type createSchema struct {
	Name         string `json:"name" validate:"required,min=3"`
	Details      string `json:"details" validate:"required,min=3,max=200"`
	Price        string `json:"price" validate:"required,number"`
	ProductImage string `json:"productImage" validate:"required"`
}

// updateSchema matches createSchema except that the image is optional.
type updateSchema struct {
	Name         string `json:"name" validate:"required,min=3"`
	Details      string `json:"details" validate:"required,min=3,max=200"`
	Price        string `json:"price" validate:"required,number"`
	ProductImage string `json:"productImage" validate:"omitempty"`
}

// ProductValidator checks product payloads against the create and update schemas.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a ProductValidator that reports fields by their JSON names.
func NewProductValidator() *ProductValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// replaces the built-in digits-only "number" rule
	if err := v.RegisterValidation("number", isFiniteNumber); err != nil {
		panic(err)
	}
	return &ProductValidator{validate: v}
}

// isFiniteNumber accepts anything strconv can read as a finite float, exponents included.
func isFiniteNumber(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" || strings.ContainsAny(s, "xX_") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ValidateCreate validates a new product. imagePath is the stored upload, empty if none.
func (pv *ProductValidator) ValidateCreate(input models.ProductInput, imagePath string) error {
	return pv.check(input, createSchema{
		Name:         input.Name,
		Details:      input.Details,
		Price:        input.Price.String(),
		ProductImage: imagePath,
	})
}

// ValidateUpdate validates an update payload.
func (pv *ProductValidator) ValidateUpdate(input models.ProductInput, imagePath string) error {
	return pv.check(input, updateSchema{
		Name:         input.Name,
		Details:      input.Details,
		Price:        input.Price.String(),
		ProductImage: imagePath,
	})
}

// check runs the field rules in schema order, then rejects the first unknown key.
func (pv *ProductValidator) check(input models.ProductInput, schema any) error {
	if err := pv.validate.Struct(schema); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return err
		}
		return toValidationError(fieldErrs[0], input)
	}
	for _, key := range input.Keys {
		if !schemaKeys[key] {
			return &ValidationError{
				Message: fmt.Sprintf("%q is not allowed", key),
				Path:    []string{key},
				Type:    "object.unknown",
			}
		}
	}
	return nil
}

func toValidationError(fe validator.FieldError, input models.ProductInput) *ValidationError {
	field := fe.Field()
	ve := &ValidationError{Path: []string{field}}
	tag := fe.Tag()
	// the image always comes from the upload, so a productImage body key never counts as sent
	if tag == "required" && field != "productImage" && input.Has(field) {
		if field == "price" {
			tag = "number"
		} else {
			tag = "empty"
		}
	}
	switch tag {
	case "required":
		ve.Type = "any.required"
		ve.Message = fmt.Sprintf("%q is required", field)
	case "empty":
		ve.Type = "string.empty"
		ve.Message = fmt.Sprintf("%q is not allowed to be empty", field)
	case "min":
		ve.Type = "string.min"
		ve.Message = fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		ve.Type = "string.max"
		ve.Message = fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "number":
		ve.Type = "number.base"
		ve.Message = fmt.Sprintf("%q must be a number", field)
	default:
		ve.Type = tag
		ve.Message = fmt.Sprintf("%q failed on the '%s' rule", field, tag)
	}
	return ve
}
