package validation

import (
	"math"
	"reflect"
	"strings"

	"withdrawal-report/internal/services"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("canonical_date", validateCanonicalDate)
	_ = v.RegisterValidation("rate_percent", validateRatePercent)
	_ = v.RegisterValidation("merchant_selection", validateMerchantSelection)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCanonicalDate accepts only real calendar dates written as YYYY-MM-DD
func validateCanonicalDate(fl validator.FieldLevel) bool {
	return services.IsCanonicalDate(fl.Field().String())
}

// validateRatePercent accepts finite percentages between 0 and 100 inclusive
func validateRatePercent(fl validator.FieldLevel) bool {
	var rate float64
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		rate = fl.Field().Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rate = float64(fl.Field().Int())
	default:
		return false
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return false
	}
	return rate >= 0 && rate <= 100
}

// validateMerchantSelection requires at least one merchant name that is not blank
func validateMerchantSelection(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < fl.Field().Len(); i++ {
		if strings.TrimSpace(fl.Field().Index(i).String()) != "" {
			return true
		}
	}
	return false
}
