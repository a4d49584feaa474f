package pkg

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrInvalidPortOrUnit,
		ErrInvalidPort,
		ErrInvalidAddress,
		ErrMulticastAddress,
		ErrInvalidParameter,
		ErrFrameTooShort,
		ErrDMAActive,
		ErrDMANotArmed,
		ErrBufferCorruption,
		ErrAlreadyRunning,
		ErrNotRunning,
		ErrNoDevice,
		ErrFileError,
		ErrAgain,
		ErrBadCommand,
		ErrBadFunction,
		ErrNoResponse,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrInvalidPortOrUnit, "invalid port or unit"},
		{ErrInvalidAddress, "invalid bus address"},
		{ErrDMAActive, "dma transfer in progress"},
		{ErrBufferCorruption, "dma buffer corruption"},
		{ErrNoResponse, "no response"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestGuardRegion_String(t *testing.T) {
	if got := GuardPre.String(); got != "pre" {
		t.Errorf("GuardPre.String() = %q, want %q", got, "pre")
	}
	if got := GuardPost.String(); got != "post" {
		t.Errorf("GuardPost.String() = %q, want %q", got, "post")
	}
}

func TestCorruptionError(t *testing.T) {
	err := &CorruptionError{
		Name:   "recv",
		Region: GuardPost,
		Offset: 3,
		Value:  0x12345678,
	}

	if !errors.Is(err, ErrBufferCorruption) {
		t.Error("CorruptionError should unwrap to ErrBufferCorruption")
	}

	msg := err.Error()
	for _, want := range []string{"recv", "post-offset 3", "0x12345678"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}

	wrapped := fmt.Errorf("verify: %w", err)
	var ce *CorruptionError
	if !errors.As(wrapped, &ce) {
		t.Fatal("errors.As failed on wrapped CorruptionError")
	}
	if ce.Offset != 3 {
		t.Errorf("Offset = %d, want 3", ce.Offset)
	}
}
