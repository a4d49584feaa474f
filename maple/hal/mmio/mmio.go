//go:build linux

package mmio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/ardnew/softmaple/maple/hal"
	"github.com/ardnew/softmaple/pkg"
)

// DefaultDevice is the physical memory device mapped when no path is given.
const DefaultDevice = "/dev/mem"

// Errors.
var (
	ErrNotMapped     = errors.New("register window not mapped")
	ErrAlreadyMapped = errors.New("register window already mapped")
)

// HAL implements hal.RegisterHAL over a memory-mapped register window.
type HAL struct {
	path string
	base int64

	mu     sync.Mutex
	mapped []byte // whole page-aligned mapping
	window []byte // register block within mapped
}

// New creates a HAL that maps the register block at physical address base
// from the device or file at path. The mapping is created by Init.
func New(path string, base int64) *HAL {
	if path == "" {
		path = DefaultDevice
	}
	return &HAL{path: path, base: base}
}

// Init opens the device and maps the register window.
func (h *HAL) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mapped != nil {
		return ErrAlreadyMapped
	}

	pageSize := int64(unix.Getpagesize())
	pageBase := h.base &^ (pageSize - 1)
	inner := int(h.base - pageBase)
	length := (int64(inner) + hal.WindowSize + pageSize - 1) &^ (pageSize - 1)

	fd, err := unix.Open(h.path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", h.path, err)
	}
	defer unix.Close(fd)

	mem, err := unix.Mmap(fd, pageBase, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap %s at 0x%x: %w", h.path, pageBase, err)
	}

	h.mapped = mem
	h.window = mem[inner : inner+hal.WindowSize]

	pkg.LogInfo(pkg.ComponentHAL, "register window mapped",
		"path", h.path,
		"base", fmt.Sprintf("0x%08x", h.base),
		"length", length)
	return nil
}

// Close unmaps the register window.
func (h *HAL) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.mapped == nil {
		return ErrNotMapped
	}
	err := unix.Munmap(h.mapped)
	h.mapped = nil
	h.window = nil
	return err
}

// word returns a pointer to the register word, or nil when the register
// lies outside the window or the window is not mapped.
func (h *HAL) word(reg hal.Register) *uint32 {
	off := reg.Offset()
	if off%4 != 0 || off+4 > uint32(len(h.window)) {
		return nil
	}
	return (*uint32)(unsafe.Pointer(&h.window[off]))
}

// Read32 implements hal.RegisterHAL.
func (h *HAL) Read32(reg hal.Register) uint32 {
	p := h.word(reg)
	if p == nil {
		pkg.LogWarn(pkg.ComponentHAL, "read outside register window", "reg", reg)
		return 0
	}
	return atomic.LoadUint32(p)
}

// Write32 implements hal.RegisterHAL.
func (h *HAL) Write32(reg hal.Register, value uint32) {
	p := h.word(reg)
	if p == nil {
		pkg.LogWarn(pkg.ComponentHAL, "write outside register window",
			"reg", reg, "value", value)
		return
	}
	atomic.StoreUint32(p, value)
}

var _ hal.RegisterHAL = (*HAL)(nil)
