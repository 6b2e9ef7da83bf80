package dto

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	tests := []struct {
		name string
		resp ErrorResponse
		want string
	}{
		{"message only", ErrorResponse{Message: "not found"}, "not found"},
		{"with details", ErrorResponse{Message: "calculation failed", ErrorDetails: "not bracketed"}, "calculation failed: not bracketed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.Error(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	e := NewErrorResponse("invalid request", nil)
	if e.Message != "invalid request" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second || e.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not set in UTC: %v", e.Timestamp)
	}

	// wrapped errors keep their full chain in the details
	inner := fmt.Errorf("bootstrap tenor 3: %w", errors.New("root not bracketed"))
	e2 := NewErrorResponse("calculation failed", inner)
	if e2.ErrorDetails != "bootstrap tenor 3: root not bracketed" {
		t.Fatalf("unexpected details %q", e2.ErrorDetails)
	}
}
