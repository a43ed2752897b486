package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Field identifiers, matching the form input names.
const (
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldMessage   = "message"
	FieldAgreement = "agreement"
)

// User-facing messages shown next to the form inputs
const (
	MsgNameRequired    = "이름을 입력해주세요"
	MsgPhoneRequired   = "연락처를 입력해주세요"
	MsgPhoneInvalid    = "올바른 연락처 형식이 아닙니다 (예: 010-1234-5678)"
	MsgEmailRequired   = "이메일을 입력해주세요"
	MsgEmailInvalid    = "올바른 이메일 형식이 아닙니다 (예: example@email.com)"
	MsgMessageRequired = "문의내용을 입력해주세요"
	MsgConsentRequired = "개인정보 수집 및 활용에 동의해주세요"
)

// FieldLabels maps field names to the labels used on the form
var FieldLabels = map[string]string{
	FieldName:      "이름",
	FieldPhone:     "연락처",
	FieldEmail:     "이메일",
	FieldMessage:   "문의내용",
	FieldAgreement: "개인정보 수집 동의",
}

// requiredMessages holds the dedicated "missing" message per field
var requiredMessages = map[string]string{
	FieldName:      MsgNameRequired,
	FieldPhone:     MsgPhoneRequired,
	FieldEmail:     MsgEmailRequired,
	FieldMessage:   MsgMessageRequired,
	FieldAgreement: MsgConsentRequired,
}

// formatSingleError formats a single validation error to a field-scoped message
func formatSingleError(e validator.FieldError) FieldError {
	field := e.Field()

	switch e.Tag() {
	case "required", "not_blank", "consent":
		if msg, ok := requiredMessages[field]; ok {
			return FieldError{Field: field, Message: msg}
		}
		return FieldError{Field: field, Message: fmt.Sprintf("%s: 필수 입력 항목입니다", getFieldLabel(field))}

	case "valid_phone":
		return FieldError{Field: field, Message: MsgPhoneInvalid}

	case "valid_email":
		return FieldError{Field: field, Message: MsgEmailInvalid}

	default:
		// Fallback for unknown tags
		return FieldError{Field: field, Message: fmt.Sprintf("%s: 입력값이 올바르지 않습니다 (%s)", getFieldLabel(field), e.Tag())}
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
