//go:build profile

package prof

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"

	"github.com/ardnew/softmaple/pkg"
)

// Enabled reports whether profiling is compiled in.
const Enabled = true

// Profiling errors.
var (
	// ErrSessionActive indicates a session is already open.
	ErrSessionActive = errors.New("profile session already active")

	// ErrInvalidProfile indicates an unknown snapshot profile.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile names a snapshot profile.
type Profile string

// Snapshot profiles written by Session.Close.
const (
	ProfileHeap      Profile = "heap"
	ProfileMutex     Profile = "mutex"
	ProfileBlock     Profile = "block"
	ProfileGoroutine Profile = "goroutine"
)

// snapshots are written, in order, when a session closes.
var snapshots = []Profile{ProfileHeap, ProfileMutex, ProfileBlock}

// Sampling rates set for the life of a session.
const (
	mutexFraction = 1
	blockRate     = 1
)

// active guards against overlapping sessions; the runtime supports one CPU
// profile at a time.
var (
	activeMutex sync.Mutex
	active      bool
)

// Session is an open profiling run.
type Session struct {
	dir     string
	cpu     *os.File
	mutexes int
}

// Start creates dir if needed, starts streaming a CPU profile to
// dir/cpu.prof, and enables mutex and block sampling.
func Start(dir string) (*Session, error) {
	activeMutex.Lock()
	defer activeMutex.Unlock()

	if active {
		return nil, ErrSessionActive
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	f, err := os.Create(filepath.Join(dir, "cpu.prof"))
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}

	s := &Session{
		dir:     dir,
		cpu:     f,
		mutexes: runtime.SetMutexProfileFraction(mutexFraction),
	}
	runtime.SetBlockProfileRate(blockRate)
	active = true

	pkg.LogInfo(pkg.ComponentDriver, "profiling started", "dir", dir)
	return s, nil
}

// Close stops the CPU profile, writes the snapshot profiles, and restores
// the sampling rates. It is safe to call on a nil or closed session.
func (s *Session) Close() error {
	if s == nil || s.cpu == nil {
		return nil
	}

	activeMutex.Lock()
	defer activeMutex.Unlock()

	pprof.StopCPUProfile()
	errs := []error{s.cpu.Close()}
	s.cpu = nil

	for _, p := range snapshots {
		errs = append(errs, Write(p, filepath.Join(s.dir, string(p)+".prof")))
	}

	runtime.SetMutexProfileFraction(s.mutexes)
	runtime.SetBlockProfileRate(0)
	active = false

	pkg.LogInfo(pkg.ComponentDriver, "profiling stopped", "dir", s.dir)
	return errors.Join(errs...)
}

// Write writes snapshot p to a file at path.
func Write(p Profile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(p, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo writes snapshot p to w in protobuf form.
func WriteTo(p Profile, w io.Writer) error {
	prof := pprof.Lookup(string(p))
	if prof == nil {
		return fmt.Errorf("%w: %q", ErrInvalidProfile, p)
	}
	return prof.WriteTo(w, 0)
}
