package validation_test

import (
	"strings"
	"testing"

	"consult-contact-relay/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() validation.Submission {
	return validation.Submission{
		Name:      "Kim",
		Phone:     "010-1234-5678",
		Email:     "a@b.com",
		Message:   "hi",
		Agreement: true,
	}
}

func fieldNames(res validation.Result) []string {
	names := make([]string, 0, len(res.FieldErrors))
	for _, fe := range res.FieldErrors {
		names = append(names, fe.Field)
	}
	return names
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"0":               "0",
		"010":             "010",
		"0101":            "010-1",
		"0101234":         "010-1234",
		"01012345":        "010-1234-5",
		"01012345678":     "010-1234-5678",
		"010-1234-5678":   "010-1234-5678",
		"010 1234 5678":   "010-1234-5678",
		"(010)1234.5678":  "010-1234-5678",
		"0101234567899":   "010-1234-5678",
		"abc":             "",
		"전화 010-9999-0000": "010-9999-0000",
	}
	for in, want := range cases {
		assert.Equal(t, want, validation.FormatPhone(in), "input %q", in)
	}
}

func TestFormatPhoneProperties(t *testing.T) {
	digits := "01098765432"
	for n := 0; n <= len(digits); n++ {
		in := digits[:n]
		out := validation.FormatPhone(in)

		assert.LessOrEqual(t, len(out), validation.MaxPhoneLength, "input %q", in)
		assert.Equal(t, out, validation.FormatPhone(out), "not idempotent for %q", in)
		assert.Equal(t, in, strings.ReplaceAll(out, "-", ""), "digits lost for %q", in)

		for i, r := range out {
			if r == '-' {
				// 1-based hyphen positions are 4 and 9
				assert.Contains(t, []int{3, 8}, i, "unexpected hyphen in %q", out)
				continue
			}
			assert.True(t, r >= '0' && r <= '9', "non-digit in %q", out)
		}
	}
}

func TestValidateAcceptsWellFormedSubmission(t *testing.T) {
	v := validation.New(validation.PhoneStrict)

	res := v.Validate(validSubmission())
	assert.True(t, res.Valid)
	assert.False(t, res.ConsentMissing)
	assert.Empty(t, res.FieldErrors)
}

func TestValidateRejectsBadEmail(t *testing.T) {
	v := validation.New(validation.PhoneStrict)
	s := validSubmission()
	s.Email = "not-an-email"

	res := v.Validate(s)
	require.False(t, res.Valid)
	assert.False(t, res.ConsentMissing)
	require.Len(t, res.FieldErrors, 1)
	assert.Equal(t, validation.FieldEmail, res.FieldErrors[0].Field)
	assert.Equal(t, validation.MsgEmailInvalid, res.FieldErrors[0].Message)
}

func TestValidateConsentGate(t *testing.T) {
	v := validation.New(validation.PhoneStrict)

	t.Run("Should reject otherwise valid submission without agreement", func(t *testing.T) {
		s := validSubmission()
		s.Agreement = false

		res := v.Validate(s)
		assert.False(t, res.Valid)
		assert.True(t, res.ConsentMissing)
		require.Len(t, res.FieldErrors, 1)
		assert.Equal(t, validation.FieldError{Field: validation.FieldAgreement, Message: validation.MsgConsentRequired}, res.FieldErrors[0])
	})

	t.Run("Should report consent first when other fields also fail", func(t *testing.T) {
		res := v.Validate(validation.Submission{Email: "x", Phone: "123"})
		assert.False(t, res.Valid)
		assert.True(t, res.ConsentMissing)
		require.NotEmpty(t, res.FieldErrors)
		assert.Equal(t, validation.FieldAgreement, res.FieldErrors[0].Field)
		assert.ElementsMatch(t,
			[]string{validation.FieldAgreement, validation.FieldName, validation.FieldPhone, validation.FieldEmail, validation.FieldMessage},
			fieldNames(res))
	})

	t.Run("Format errors alone never set ConsentMissing", func(t *testing.T) {
		s := validSubmission()
		s.Phone = "12-34"
		res := v.Validate(s)
		assert.False(t, res.Valid)
		assert.False(t, res.ConsentMissing)
	})
}

func TestValidateRequiredMessages(t *testing.T) {
	v := validation.New(validation.PhoneStrict)
	res := v.Validate(validation.Submission{Name: "   ", Message: "\n\t", Agreement: true})

	msgs := map[string]string{}
	for _, fe := range res.FieldErrors {
		msgs[fe.Field] = fe.Message
	}
	assert.Equal(t, validation.MsgNameRequired, msgs[validation.FieldName])
	assert.Equal(t, validation.MsgPhoneRequired, msgs[validation.FieldPhone])
	assert.Equal(t, validation.MsgEmailRequired, msgs[validation.FieldEmail])
	assert.Equal(t, validation.MsgMessageRequired, msgs[validation.FieldMessage])
	assert.NotContains(t, msgs, validation.FieldAgreement)
}

func TestPhonePolicies(t *testing.T) {
	strict := validation.New(validation.PhoneStrict)
	lenient := validation.New(validation.PhoneLenient)

	cases := []struct {
		phone         string
		strict, loose bool
	}{
		{"010-1234-5678", true, true},
		{"011-123-4567", true, true},
		{"02-123-4567", false, true},
		{"01012345678", false, true},
		{"010-1234-567", false, true},
		{"+82-10-1234-5678", false, false},
		{"010 1234 5678", false, false},
	}
	for _, tc := range cases {
		s := validSubmission()
		s.Phone = tc.phone
		assert.Equal(t, tc.strict, strict.Validate(s).Valid, "strict %q", tc.phone)
		assert.Equal(t, tc.loose, lenient.Validate(s).Valid, "lenient %q", tc.phone)
	}
}

func TestParsePhonePolicy(t *testing.T) {
	assert.Equal(t, validation.PhoneLenient, validation.ParsePhonePolicy(" Lenient "))
	assert.Equal(t, validation.PhoneStrict, validation.ParsePhonePolicy("strict"))
	assert.Equal(t, validation.PhoneStrict, validation.ParsePhonePolicy(""))
	assert.Equal(t, validation.PhoneStrict, validation.ParsePhonePolicy("bogus"))
}

func TestTrimmed(t *testing.T) {
	s := validation.Submission{Name: "  Kim ", Phone: " 010-1234-5678\n", Email: " a@b.com", Message: " hi\nthere ", Agreement: true}
	got := s.Trimmed()
	assert.Equal(t, "Kim", got.Name)
	assert.Equal(t, "010-1234-5678", got.Phone)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "hi\nthere", got.Message)
	assert.True(t, got.Agreement)
}
