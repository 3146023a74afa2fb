package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"mindfullearner/internal/apperr"
	"mindfullearner/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so the error envelope matches the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("", "invalid_body")
	}
	return check(dst)
}

// check turns the first failed rule into a Validation error naming the field.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperr.Validation(fe.Field(), reason(fe.Tag()))
	}
	return apperr.Validation("", "invalid_body")
}

func reason(tag string) string {
	switch tag {
	case "required", "notblank":
		return "required"
	case "min", "max", "gte", "lte":
		return "out_of_range"
	case "oneof":
		return "invalid_choice"
	case "email":
		return "invalid_email"
	case "date":
		return "invalid_date"
	default:
		return "invalid"
	}
}

// dateParam validates a YYYY-MM-DD path or query value.
func dateParam(field, value string) (string, error) {
	if _, err := models.ParseDate(value); err != nil {
		return "", apperr.Validation(field, "invalid_date")
	}
	return value, nil
}
