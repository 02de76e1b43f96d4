package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"sort"
	"strings"

	"catalog/internal/models"
	"catalog/internal/uploads"

	"github.com/gofiber/fiber/v2"
)

var errNotObject = errors.New("request body must be a JSON object")

// parseProductRequest decodes the product fields, the keys the client sent and the optional image file.
// JSON, multipart and urlencoded bodies are accepted; an empty body is an empty payload.
func parseProductRequest(c *fiber.Ctx) (models.ProductInput, *multipart.FileHeader, error) {
	var input models.ProductInput
	if len(c.Body()) == 0 {
		return input, nil, nil
	}

	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		keys, err := jsonObjectKeys(c.Body())
		if err != nil {
			return input, nil, err
		}
		if err := c.BodyParser(&input); err != nil {
			return input, nil, err
		}
		input.Keys = keys
		return input, nil, nil

	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return input, nil, err
		}
		for key, values := range form.Value {
			if len(values) > 0 {
				setField(&input, key, values[0])
			}
		}
		input.Keys = formKeys(form)

		var image *multipart.FileHeader
		if files := form.File[uploads.FieldName]; len(files) > 0 {
			image = files[0]
		}
		return input, image, nil

	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			key := string(k)
			if !input.Has(key) {
				setField(&input, key, string(v))
				input.Keys = append(input.Keys, key)
			}
		})
		return input, nil, nil

	default:
		return input, nil, fiber.ErrUnprocessableEntity
	}
}

// setField assigns a form value to the matching input field. Unknown keys are only recorded.
func setField(input *models.ProductInput, key, value string) {
	switch key {
	case "name":
		input.Name = value
	case "details":
		input.Details = value
	case "price":
		input.Price = models.NewPrice(value)
	}
}

// formKeys returns the value and file field names of a multipart form, sorted.
// Multipart parsing does not keep field order.
func formKeys(form *multipart.Form) []string {
	keys := make([]string, 0, len(form.Value)+len(form.File))
	for key := range form.Value {
		keys = append(keys, key)
	}
	for key := range form.File {
		if _, dup := form.Value[key]; !dup {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// jsonObjectKeys returns the top-level keys of a JSON object in document order.
func jsonObjectKeys(body []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
