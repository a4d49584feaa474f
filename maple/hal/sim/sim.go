package sim

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ardnew/softmaple/maple/hal"
	"github.com/ardnew/softmaple/pkg"
)

// Errors.
var (
	ErrClosed = errors.New("register file closed")
)

// Access records a single register write.
type Access struct {
	Reg   hal.Register
	Value uint32
}

// Responder is called when a simulated DMA transfer completes, with the
// value held in the DMA address register.
type Responder func(target uint32)

// Option configures a simulated HAL.
type Option func(*HAL)

// WithCompleteAfter makes a started transfer complete on its own after the
// state register has been polled n times while busy. With n <= 0 transfers
// only complete through [HAL.Complete].
func WithCompleteAfter(n int) Option {
	return func(h *HAL) {
		h.completeAfter = int32(n)
	}
}

// WithResponder installs a callback run at transfer completion.
func WithResponder(r Responder) Option {
	return func(h *HAL) {
		h.responder = r
	}
}

// WithInitError makes Init fail with err.
func WithInitError(err error) Option {
	return func(h *HAL) {
		h.initErr = err
	}
}

// HAL implements hal.RegisterHAL and hal.BeamCounter in memory.
//
// Register words are stored atomically, so the simulated controller may be
// polled from one goroutine while another drives the beam position.
type HAL struct {
	regs [hal.WindowSize / 4]atomic.Uint32

	completeAfter int32
	polls         atomic.Int32
	responder     Responder
	initErr       error

	// Packed beam position (x in the high word)
	beam atomic.Uint64

	closed atomic.Bool

	logMu sync.Mutex
	log   []Access
}

// New creates a simulated register file. All registers start at zero,
// which is the disabled, idle bus.
func New(opts ...Option) *HAL {
	h := &HAL{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init implements hal.RegisterHAL.
func (h *HAL) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.initErr != nil {
		return h.initErr
	}
	h.closed.Store(false)
	pkg.LogDebug(pkg.ComponentHAL, "simulated register file ready")
	return nil
}

// Close implements hal.RegisterHAL.
func (h *HAL) Close() error {
	if h.closed.Swap(true) {
		return ErrClosed
	}
	return nil
}

// Read32 implements hal.RegisterHAL. Reading a busy state register counts
// towards automatic completion.
func (h *HAL) Read32(reg hal.Register) uint32 {
	v := h.Peek(reg)
	if reg != hal.RegState || v&hal.StateDMA == 0 || h.completeAfter <= 0 {
		return v
	}
	if h.polls.Add(1) >= h.completeAfter {
		h.Complete()
		return h.Peek(reg)
	}
	return v
}

// Write32 implements hal.RegisterHAL.
func (h *HAL) Write32(reg hal.Register, value uint32) {
	idx := reg.Offset() / 4
	if reg.Offset()%4 != 0 || idx >= uint32(len(h.regs)) {
		pkg.LogWarn(pkg.ComponentHAL, "write outside register window",
			"reg", reg, "value", value)
		return
	}

	h.logMu.Lock()
	h.log = append(h.log, Access{Reg: reg, Value: value})
	h.logMu.Unlock()

	if reg == hal.RegState && value&hal.StateDMA != 0 {
		h.polls.Store(0)
	}
	h.regs[idx].Store(value)
}

// Peek reads a register without side effects.
func (h *HAL) Peek(reg hal.Register) uint32 {
	idx := reg.Offset() / 4
	if reg.Offset()%4 != 0 || idx >= uint32(len(h.regs)) {
		return 0
	}
	return h.regs[idx].Load()
}

// Complete finishes a transfer in progress, as the controller does when
// the last command frame has been answered. It reports whether a transfer
// was in progress.
func (h *HAL) Complete() bool {
	state := &h.regs[hal.RegState.Offset()/4]
	for {
		v := state.Load()
		if v&hal.StateDMA == 0 {
			return false
		}
		if state.CompareAndSwap(v, v&^hal.StateDMA) {
			break
		}
	}
	if h.responder != nil {
		h.responder(h.Peek(hal.RegDMAAddr))
	}
	pkg.LogDebug(pkg.ComponentHAL, "simulated transfer complete",
		"target", h.Peek(hal.RegDMAAddr))
	return true
}

// Writes returns a copy of every register write since the last ResetLog.
func (h *HAL) Writes() []Access {
	h.logMu.Lock()
	defer h.logMu.Unlock()
	out := make([]Access, len(h.log))
	copy(out, h.log)
	return out
}

// ResetLog discards the recorded writes.
func (h *HAL) ResetLog() {
	h.logMu.Lock()
	defer h.logMu.Unlock()
	h.log = h.log[:0]
}

// SetBeam moves the simulated video beam.
func (h *HAL) SetBeam(x, y int) {
	h.beam.Store(uint64(uint32(x))<<32 | uint64(uint32(y)))
}

// BeamPosition implements hal.BeamCounter.
func (h *HAL) BeamPosition() (x, y int) {
	v := h.beam.Load()
	return int(int32(v >> 32)), int(int32(v))
}

var (
	_ hal.RegisterHAL = (*HAL)(nil)
	_ hal.BeamCounter = (*HAL)(nil)
)
