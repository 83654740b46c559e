package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type reportForm struct {
	Merchants []string `json:"selected_merchants" validate:"required,merchant_selection"`
	StartDate string   `json:"start_date" validate:"required,canonical_date"`
	Rate      *float64 `json:"percentage" validate:"required,rate_percent"`
}

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

func rate(v float64) *float64 {
	return &v
}

func (s *ValidatorTestSuite) failedFields(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	s.Require().True(errors.As(err, &validationErrs))

	fields := make(map[string]string)
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func (s *ValidatorTestSuite) TestValidForm() {
	form := reportForm{Merchants: []string{"Acme"}, StartDate: "2024-02-29", Rate: rate(0)}
	s.NoError(s.validator.Struct(form))
}

func (s *ValidatorTestSuite) TestCanonicalDate() {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"leap day", "2024-02-29", true},
		{"not a leap year", "2023-02-29", false},
		{"day first", "15/03/2023", false},
		{"missing zero padding", "2023-3-15", false},
		{"with time", "2023-03-15T00:00:00Z", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			form := reportForm{Merchants: []string{"Acme"}, StartDate: tc.value, Rate: rate(1)}
			err := s.validator.Struct(form)
			if tc.valid {
				s.NoError(err)
				return
			}
			s.Equal("canonical_date", s.failedFields(err)["start_date"])
		})
	}
}

func (s *ValidatorTestSuite) TestRatePercent() {
	testCases := []struct {
		name  string
		value float64
		valid bool
	}{
		{"zero", 0, true},
		{"hundred", 100, true},
		{"fraction", 2.5, true},
		{"negative", -0.01, false},
		{"above hundred", 100.5, false},
		{"nan", math.NaN(), false},
		{"infinity", math.Inf(1), false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			form := reportForm{Merchants: []string{"Acme"}, StartDate: "2024-01-01", Rate: rate(tc.value)}
			err := s.validator.Struct(form)
			if tc.valid {
				s.NoError(err)
				return
			}
			s.Equal("rate_percent", s.failedFields(err)["percentage"])
		})
	}
}

func (s *ValidatorTestSuite) TestRatePercent_Missing() {
	form := reportForm{Merchants: []string{"Acme"}, StartDate: "2024-01-01"}
	s.Equal("required", s.failedFields(s.validator.Struct(form))["percentage"])
}

func (s *ValidatorTestSuite) TestMerchantSelection_BlankNamesOnly() {
	form := reportForm{Merchants: []string{" ", ""}, StartDate: "2024-01-01", Rate: rate(1)}
	s.Equal("merchant_selection", s.failedFields(s.validator.Struct(form))["selected_merchants"])
}

func (s *ValidatorTestSuite) TestGetValidator_ReturnsSingleton() {
	s.Same(GetValidator(), GetValidator())
}
