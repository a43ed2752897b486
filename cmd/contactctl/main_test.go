package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"consult-contact-relay/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	form = validation.Submission{}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFormatPhoneCommand(t *testing.T) {
	out, _, err := run(t, "format-phone", "010 1234 5678")
	require.NoError(t, err)
	assert.Equal(t, "010-1234-5678\n", out)
}

func TestValidateCommand(t *testing.T) {
	out, _, err := run(t, "validate", "--name", "Kim", "--phone", "01012345678", "--email", "a@b.com", "--message", "hi", "--agree")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, errOut, err := run(t, "validate", "--name", "Kim", "--phone", "01012345678", "--email", "a@b.com", "--message", "hi")
	assert.Error(t, err)
	assert.Contains(t, errOut, "agreement: "+validation.MsgConsentRequired)
}

func TestSubmitCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"문의가 성공적으로 전송되었습니다."}`))
	}))
	defer srv.Close()

	out, _, err := run(t, "submit", "--url", srv.URL, "--name", "Kim", "--phone", "010-1234-5678", "--email", "a@b.com", "--message", "hi", "--agree")
	require.NoError(t, err)
	assert.Equal(t, "문의가 성공적으로 전송되었습니다.\n", out)
}
