package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "udyam-portal/pkg/domain-errors"
	s "udyam-portal/pkg/string"
)

var (
	aadhaarRe = regexp.MustCompile(`^\d{12}$`)
	mobileRe  = regexp.MustCompile(`^[6-9]\d{9}$`)
	panRe     = regexp.MustCompile(`^[A-Za-z]{5}[0-9]{4}[A-Za-z]$`)
	gstinRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	udyamRe   = regexp.MustCompile(`^UDYAM-[A-Z]{2}-[0-9]{2}-[0-9]{6}$`)
)

// Field-level validators. Pure and deterministic so they can be unit tested
// with literal strings; the struct tags below delegate to them.

// ValidAadhaar reports whether v is a well-formed Aadhaar number:
// exactly 12 digits and not the all-zero sequence.
func ValidAadhaar(v string) bool {
	return aadhaarRe.MatchString(v) && v != "000000000000"
}

// ValidMobile reports whether v is a 10-digit Indian mobile number
// (first digit 6-9).
func ValidMobile(v string) bool {
	return mobileRe.MatchString(v)
}

// ValidPAN reports whether v matches the PAN shape: 5 letters, 4 digits,
// 1 letter. Case-insensitive; callers normalize to uppercase before storage.
func ValidPAN(v string) bool {
	return panRe.MatchString(v)
}

// ValidGSTIN reports whether v matches the 15-character GSTIN shape.
// The check expects the uppercased form.
func ValidGSTIN(v string) bool {
	return gstinRe.MatchString(strings.ToUpper(v))
}

// ValidPincode reports whether v is a 6-digit PIN code.
func ValidPincode(v string) bool {
	return pincodeRe.MatchString(v)
}

// ValidUdyamNumber reports whether v matches the issued registration number
// format UDYAM-XX-NN-NNNNNN. The check expects the uppercased form.
func ValidUdyamNumber(v string) bool {
	return udyamRe.MatchString(strings.ToUpper(v))
}

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		return ValidAadhaar(fl.Field().String())
	})
	_ = v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return ValidMobile(fl.Field().String())
	})
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return ValidPAN(fl.Field().String())
	})
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return ValidGSTIN(fl.Field().String())
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return ValidPincode(fl.Field().String())
	})
	_ = v.RegisterValidation("udyam", func(fl validator.FieldLevel) bool {
		return ValidUdyamNumber(fl.Field().String())
	})
	return v
}

// Validate validates a struct using the default validator and returns a domain error
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// ErrorMessage converts a validator error into a human-readable message
func ErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}

	fe := validationErrs[0]
	fieldName := fe.Field()
	if fieldName == "" {
		fieldName = fe.StructField()
	}
	field := s.ToSnakeCase(fieldName)

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "aadhaar":
		return fmt.Sprintf("%s must be a valid 12-digit Aadhaar number", field)
	case "inmobile":
		return fmt.Sprintf("%s must be a valid 10-digit mobile number", field)
	case "pan":
		return fmt.Sprintf("%s must be a valid PAN (e.g. ABCDE1234F)", field)
	case "gstin":
		return fmt.Sprintf("%s must be a valid 15-character GSTIN", field)
	case "pincode":
		return fmt.Sprintf("%s must be a valid 6-digit PIN code", field)
	case "udyam":
		return fmt.Sprintf("%s must match UDYAM-XX-NN-NNNNNN", field)
	default:
		if field == "" {
			return "invalid request body"
		}
		return fmt.Sprintf("%s is invalid", field)
	}
}
