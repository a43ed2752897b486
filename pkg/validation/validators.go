package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PhonePolicy selects how strictly the phone field is checked.
type PhonePolicy string

const (
	// PhoneStrict accepts Korean mobile numbers only (010-1234-5678, 011-123-4567).
	PhoneStrict PhonePolicy = "strict"
	// PhoneLenient accepts any non-empty string of digits and hyphens.
	PhoneLenient PhonePolicy = "lenient"
)

// Regex patterns
var (
	// Korean mobile numbering: 01X-XXX(X)-XXXX
	mobilePhoneRegex = regexp.MustCompile(`^01[0-9]-[0-9]{3,4}-[0-9]{4}$`)

	phoneCharsRegex = regexp.MustCompile(`^[0-9-]+$`)

	// Same shape the contact form enforces in the browser
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
)

// ParsePhonePolicy maps a config value to a PhonePolicy, defaulting to strict.
func ParsePhonePolicy(s string) PhonePolicy {
	if strings.EqualFold(strings.TrimSpace(s), string(PhoneLenient)) {
		return PhoneLenient
	}
	return PhoneStrict
}

// RegisterValidators registers custom validators to the validator instance.
// The valid_phone tag is bound to the given policy.
func RegisterValidators(v *validator.Validate, policy PhonePolicy) {
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("valid_email", ValidEmail)
	_ = v.RegisterValidation("consent", Consent)
	if policy == PhoneLenient {
		_ = v.RegisterValidation("valid_phone", PhoneChars)
	} else {
		_ = v.RegisterValidation("valid_phone", MobilePhone)
	}

	// Report fields by their JSON names so errors line up with the form inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// NotBlank rejects empty and whitespace-only strings.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// MobilePhone validates a hyphenated Korean mobile number
func MobilePhone(fl validator.FieldLevel) bool {
	return mobilePhoneRegex.MatchString(fl.Field().String())
}

// PhoneChars validates that a phone number is made of digits and hyphens only
func PhoneChars(fl validator.FieldLevel) bool {
	return phoneCharsRegex.MatchString(fl.Field().String())
}

// ValidEmail validates the basic local@domain.tld shape
func ValidEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// Consent requires a boolean field to be true.
func Consent(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
}
