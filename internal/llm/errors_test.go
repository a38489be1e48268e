package llm

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("boom")

	var rl *ErrRateLimit
	if err := classifyStatus(ProviderGemini, http.StatusTooManyRequests, 3*time.Second, cause); !errors.As(err, &rl) || rl.RetryAfter != 3*time.Second {
		t.Errorf("429 = %v", err)
	}

	var unauth *ErrUnauthorized
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		err := classifyStatus(ProviderGemini, status, 0, cause)
		if !errors.As(err, &unauth) || unauth.Provider != ProviderGemini {
			t.Errorf("%d = %v", status, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("%d does not wrap the cause", status)
		}
	}

	var unavail *ErrProviderUnavailable
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, 0} {
		if err := classifyStatus(ProviderGemini, status, 0, cause); !errors.As(err, &unavail) {
			t.Errorf("%d = %v", status, err)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 0},
		{"12", 12 * time.Second},
		{"0", 0},
		{"soon", 0},
		{now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
	}
	for _, tt := range tests {
		h := http.Header{}
		if tt.value != "" {
			h.Set("Retry-After", tt.value)
		}
		if got := parseRetryAfter(h, now); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %s, want %s", tt.value, got, tt.want)
		}
	}
}
