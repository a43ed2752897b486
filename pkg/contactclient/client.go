package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"consult-contact-relay/pkg/validation"
)

// ContactPath is the relay route relative to the base URL
const ContactPath = "/api/contact"

// ValidationError is returned when a submission is blocked before dispatch.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	if len(e.Result.FieldErrors) == 0 {
		return "submission is invalid"
	}
	return e.Result.FieldErrors[0].Message
}

// RemoteError is a failure reported by the relay.
type RemoteError struct {
	StatusCode int
	Message    string
	Fields     []validation.FieldError
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("relay returned %d: %s", e.StatusCode, e.Message)
}

// Result is the relay's confirmation
type Result struct {
	OK      bool
	Message string
}

// Client prepares and sends contact submissions to the relay the way the site form does.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validator  *validation.Validator
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPhonePolicy selects the phone check applied before sending
func WithPhonePolicy(p validation.PhonePolicy) Option {
	return func(c *Client) { c.validator = validation.New(p) }
}

// New creates a Client for the relay at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		validator:  validation.New(validation.PhoneStrict),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prepare formats the phone number and validates the submission.
// The returned submission is what would be sent.
func (c *Client) Prepare(s validation.Submission) (validation.Submission, validation.Result) {
	s = s.Trimmed()
	s.Phone = validation.FormatPhone(s.Phone)
	return s, c.validator.Validate(s)
}

// Submit validates and, only when valid, posts the submission once.
// There is no retry; the caller decides whether to resubmit.
func (c *Client) Submit(ctx context.Context, s validation.Submission) (*Result, error) {
	prepared, res := c.Prepare(s)
	if !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	payload, err := json.Marshal(prepared)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ContactPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send submission: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Message string                  `json:"message"`
		Error   string                  `json:"error"`
		Fields  []validation.FieldError `json:"fields"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil && resp.StatusCode == http.StatusOK {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode != http.StatusOK {
		msg := body.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: msg, Fields: body.Fields}
	}

	return &Result{OK: true, Message: body.Message}, nil
}

// IsValidationError reports whether err blocked the submission locally
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
