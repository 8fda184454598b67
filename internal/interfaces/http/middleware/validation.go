package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hostel/backend/internal/domain/hostel"
	"github.com/hostel/backend/internal/interfaces/http/dto"
)

// SetupValidator reports fields by their JSON (or form) name and registers
// the hostel-specific tags. Call it once before serving.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return RegisterValidations(v)
}

// RegisterValidations installs the tag name func and custom tags on v
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	if err := v.RegisterValidation("room_number", validateRoomNumber); err != nil {
		return err
	}
	return v.RegisterValidation("bill_month", validateBillMonth)
}

func validateRoomNumber(fl validator.FieldLevel) bool {
	n := strings.TrimSpace(fl.Field().String())
	return n != "" && utf8.RuneCountInString(n) <= hostel.MaxRoomNumberLength
}

func validateBillMonth(fl validator.FieldLevel) bool {
	m := hostel.NormalizeMonth(fl.Field().String())
	return m != "" && utf8.RuneCountInString(m) <= hostel.MaxMonthLength
}

// FormatValidationErrors converts binding errors into the API envelope
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError writes a 400 validation response
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "room_number":
		return fmt.Sprintf("Room number must be 1 to %d characters", hostel.MaxRoomNumberLength)
	case "bill_month":
		return fmt.Sprintf("Month must be 1 to %d characters", hostel.MaxMonthLength)
	default:
		return "Invalid value"
	}
}
