package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"covid-hospital-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HospitalInputKey is the context key holding the validated hospital body
const HospitalInputKey = "hospitalInput"

type fieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidateHospital rejects hospital bodies that fail validation before the handler runs.
// The parsed body is stored under HospitalInputKey.
func ValidateHospital(validate *validator.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.HospitalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": []fieldError{{Field: "body", Error: err.Error()}},
			})
			return
		}

		if err := validate.Struct(input); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"errors": fieldErrors(err),
			})
			return
		}

		c.Set(HospitalInputKey, input)
		c.Next()
	}
}

func fieldErrors(err error) []fieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []fieldError{{Field: "body", Error: err.Error()}}
	}

	out := make([]fieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, fieldError{
			Field: fe.Field(),
			Error: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed " + strings.ToLower(fe.Tag()) + " validation"
	}
}

// NewValidator returns a validator that reports JSON field names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
