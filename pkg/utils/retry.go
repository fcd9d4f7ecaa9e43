package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

var retryInPattern = regexp.MustCompile(`(?i)retry in (\d+)`)

// RetryPolicy governs the rate-limit retry loop around generation calls.
// MaxAttempts counts the initial call, so 3 means at most two retries.
type RetryPolicy struct {
	MaxAttempts  int
	DefaultDelay time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		DefaultDelay: 60 * time.Second,
	}
}

// DelayFrom parses a provider-suggested "retry in N" (seconds) hint from an
// error message, falling back to the policy default.
func (p RetryPolicy) DelayFrom(errText string) time.Duration {
	matches := retryInPattern.FindStringSubmatch(errText)
	if len(matches) >= 2 {
		if seconds, err := strconv.Atoi(matches[1]); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return p.DefaultDelay
}

// IsRateLimited reports whether a provider error is a rate-limit/quota
// signal. Only these are worth retrying.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "quota")
}
