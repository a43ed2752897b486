package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Submission is one contact form attempt as entered by the visitor.
type Submission struct {
	Name      string `json:"name" validate:"not_blank"`
	Phone     string `json:"phone" validate:"required,valid_phone"`
	Email     string `json:"email" validate:"required,valid_email"`
	Message   string `json:"message" validate:"not_blank"`
	Agreement bool   `json:"agreement" validate:"consent"`
}

// Trimmed returns a copy with surrounding whitespace removed from the text fields.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:      strings.TrimSpace(s.Name),
		Phone:     strings.TrimSpace(s.Phone),
		Email:     strings.TrimSpace(s.Email),
		Message:   strings.TrimSpace(s.Message),
		Agreement: s.Agreement,
	}
}

// FieldError is a single field-scoped, user-facing validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a Submission.
type Result struct {
	Valid bool `json:"valid"`
	// ConsentMissing is set when agreement was not given, independent of
	// any format errors on the other fields.
	ConsentMissing bool         `json:"consent_missing"`
	FieldErrors    []FieldError `json:"field_errors,omitempty"`
}

// Validator checks contact submissions against a phone policy.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	policy   PhonePolicy
}

// New builds a Validator for the given phone policy.
func New(policy PhonePolicy) *Validator {
	v := validator.New()
	RegisterValidators(v, policy)
	return &Validator{validate: v, policy: policy}
}

// Policy returns the phone policy the validator enforces.
func (v *Validator) Policy() PhonePolicy {
	return v.policy
}

// Validate checks every field. A missing agreement is always reported
// first with its own message.
func (v *Validator) Validate(s Submission) Result {
	err := v.validate.Struct(s)
	if err == nil {
		return Result{Valid: true}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a field error (e.g. invalid argument); report it against the form
		return Result{FieldErrors: []FieldError{{Field: "form", Message: err.Error()}}}
	}

	res := Result{}
	var formatErrors []FieldError
	for _, fe := range validationErrors {
		if fe.Field() == FieldAgreement {
			res.ConsentMissing = true
			continue
		}
		formatErrors = append(formatErrors, formatSingleError(fe))
	}
	if res.ConsentMissing {
		res.FieldErrors = append(res.FieldErrors, FieldError{Field: FieldAgreement, Message: MsgConsentRequired})
	}
	res.FieldErrors = append(res.FieldErrors, formatErrors...)
	return res
}
