package restapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const maxRequestBodyBytes = 1 << 20

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field names in errors follow the JSON tags.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// validateStruct returns nil when s is valid, otherwise the failures keyed by
// the dotted JSON path of each field.
func validateStruct(s interface{}) map[string][]string {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string][]string{"body": {err.Error()}}
	}

	fieldErrors := make(map[string][]string, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		fieldErrors[field] = append(fieldErrors[field], translateError(fe))
	}
	return fieldErrors
}

func translateError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}

// decodeJSONBody reads a size-limited JSON body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) map[string][]string {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	err := json.NewDecoder(body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return map[string][]string{"body": {"request body is required"}}
	case errors.As(err, &maxBytesErr):
		return map[string][]string{"body": {fmt.Sprintf("request body must not exceed %d bytes", maxRequestBodyBytes)}}
	default:
		return map[string][]string{"body": {"request body must be valid JSON"}}
	}
}
