package models

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/anthropics/anthropic-sdk-go"
	goopenai "github.com/meguminnnnnnnnn/go-openai"
	"google.golang.org/genai"
)

// AuthenticationError means the provider rejected the credential.
type AuthenticationError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s rejected the API key (status %d): %v", e.Provider, e.StatusCode, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// TransportError covers every other failed request: unreachable host,
// timeout, cancelled context, or a non-auth error status.
type TransportError struct {
	Provider   string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// statusPattern catches status codes that only survive in the message text,
// e.g. "error, status code: 401, status: 401 Unauthorized".
var statusPattern = regexp.MustCompile(`status code:? (\d{3})`)

// classifyError maps a provider error onto AuthenticationError or
// TransportError. Errors that are already classified pass through.
func classifyError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var authErr *AuthenticationError
	var transportErr *TransportError
	if errors.As(err, &authErr) || errors.As(err, &transportErr) {
		return err
	}

	status := statusCode(err)
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &AuthenticationError{Provider: provider, StatusCode: status, Err: err}
	}
	return &TransportError{Provider: provider, StatusCode: status, Err: err}
}

func statusCode(err error) int {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return apiErr.HTTPStatusCode
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return reqErr.HTTPStatusCode
	}
	var antErr *anthropic.Error
	if errors.As(err, &antErr) && antErr.StatusCode != 0 {
		return antErr.StatusCode
	}
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) && geminiErr.Code != 0 {
		return geminiErr.Code
	}
	if m := statusPattern.FindStringSubmatch(err.Error()); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}
