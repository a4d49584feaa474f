//go:build !profile

package prof

import "io"

// Enabled reports whether profiling is compiled in.
const Enabled = false

// Profiling errors (never returned by stubs).
var (
	ErrSessionActive  error
	ErrInvalidProfile error
)

// Profile names a snapshot profile.
type Profile string

// Snapshot profiles.
const (
	ProfileHeap      Profile = "heap"
	ProfileMutex     Profile = "mutex"
	ProfileBlock     Profile = "block"
	ProfileGoroutine Profile = "goroutine"
)

// Session is an open profiling run.
type Session struct{}

// Start returns a nil session when built without the "profile" tag.
func Start(_ string) (*Session, error) {
	return nil, nil
}

// Close is a no-op when built without the "profile" tag.
func (s *Session) Close() error {
	return nil
}

// Write is a no-op when built without the "profile" tag.
func Write(_ Profile, _ string) error {
	return nil
}

// WriteTo is a no-op when built without the "profile" tag.
func WriteTo(_ Profile, _ io.Writer) error {
	return nil
}
