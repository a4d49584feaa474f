package maple

import (
	"fmt"
	"sync"

	"github.com/ardnew/softmaple/maple/hal"
	"github.com/ardnew/softmaple/pkg"
)

// DMAState is the host view of the bus DMA engine.
type DMAState uint8

// DMA states.
const (
	DMAIdle   DMAState = iota // No target programmed, no transfer
	DMAArmed                  // Target programmed, transfer not started
	DMAActive                 // Transfer started, completion not yet observed
)

// String returns the state name.
func (s DMAState) String() string {
	switch s {
	case DMAIdle:
		return "Idle"
	case DMAArmed:
		return "Armed"
	case DMAActive:
		return "Active"
	default:
		return fmt.Sprintf("DMAState(%d)", uint8(s))
	}
}

// Bus controls bus power and the DMA engine through the controller
// registers.
//
// The registers are the source of truth for whether a transfer is running.
// Bus keeps only enough state to reject starting a transfer that is already
// running or has no target. Callers issue one transaction at a time.
type Bus struct {
	regs hal.RegisterHAL

	mutex  sync.Mutex
	state  DMAState
	target uint32
}

// NewBus creates a bus controller over the given registers.
func NewBus(regs hal.RegisterHAL) *Bus {
	return &Bus{regs: regs}
}

// Reset unlocks the controller, programs the bus speed and response
// timeout, and enables the bus. Any transfer state is discarded.
func (b *Bus) Reset(timeout uint16) {
	b.regs.Write32(hal.RegReset1, hal.Reset1Magic)
	b.regs.Write32(hal.RegReset2, hal.Reset2Magic)
	b.regs.Write32(hal.RegSpeed, hal.Speed2Mbps|hal.SpeedTimeout(timeout))
	b.Stop()
	b.SetEnabled(true)

	pkg.LogDebug(pkg.ComponentBus, "bus reset", "timeout", timeout)
}

// SetEnabled turns the bus on or off.
func (b *Bus) SetEnabled(enable bool) {
	if enable {
		b.regs.Write32(hal.RegEnable, hal.EnableEnabled)
	} else {
		b.regs.Write32(hal.RegEnable, hal.EnableDisabled)
	}
	pkg.LogDebug(pkg.ComponentBus, "bus enable", "enabled", enable)
}

// Enabled reports whether the bus is enabled.
func (b *Bus) Enabled() bool {
	return b.regs.Read32(hal.RegEnable)&hal.EnableEnabled != 0
}

// SetDMATarget programs the address of the command buffer for the next
// transfer. The address is masked to its physical form; alignment is the
// caller's concern (see DMABuffer). Reprogramming the target while a
// transfer is running is rejected with pkg.ErrDMAActive.
func (b *Bus) SetDMATarget(addr uintptr) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.state == DMAActive && b.busy() {
		pkg.LogWarn(pkg.ComponentDMA, "target change during transfer",
			"target", fmt.Sprintf("0x%08x", b.target))
		return pkg.ErrDMAActive
	}

	b.target = uint32(addr & MemAreaCacheMask)
	b.regs.Write32(hal.RegDMAAddr, b.target)
	b.state = DMAArmed

	pkg.LogDebug(pkg.ComponentDMA, "dma target",
		"target", fmt.Sprintf("0x%08x", b.target))
	return nil
}

// Arm programs buf as the DMA target.
func (b *Bus) Arm(buf *DMABuffer) error {
	return b.SetDMATarget(buf.Addr())
}

// Start begins a transfer. It fails with pkg.ErrDMAActive while a transfer
// is running and with pkg.ErrDMANotArmed if no target has been programmed
// since the last transfer; neither case touches the registers.
func (b *Bus) Start() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	switch {
	case b.busy():
		pkg.LogWarn(pkg.ComponentDMA, "start during transfer", "state", b.state)
		return pkg.ErrDMAActive
	case b.state != DMAArmed:
		pkg.LogWarn(pkg.ComponentDMA, "start without target", "state", b.state)
		return pkg.ErrDMANotArmed
	}

	b.regs.Write32(hal.RegState, hal.StateDMA)
	b.state = DMAActive

	pkg.LogDebug(pkg.ComponentDMA, "dma start",
		"target", fmt.Sprintf("0x%08x", b.target))
	return nil
}

// Stop idles the DMA engine, aborting any transfer in progress.
func (b *Bus) Stop() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.regs.Write32(hal.RegState, hal.StateIdle)
	if b.state != DMAIdle {
		pkg.LogDebug(pkg.ComponentDMA, "dma stop", "state", b.state)
	}
	b.state = DMAIdle
}

// IsActive reports whether a transfer is in progress. Observing that a
// started transfer has finished returns the bus to DMAIdle.
func (b *Bus) IsActive() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.busy() {
		return true
	}
	if b.state == DMAActive {
		b.state = DMAIdle
		pkg.LogDebug(pkg.ComponentDMA, "dma complete",
			"target", fmt.Sprintf("0x%08x", b.target))
	}
	return false
}

// State returns the DMA state as last observed.
func (b *Bus) State() DMAState {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.state
}

// Target returns the last programmed DMA target address.
func (b *Bus) Target() uint32 {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.target
}

// busy reads the DMA bit of the state register.
func (b *Bus) busy() bool {
	return b.regs.Read32(hal.RegState)&hal.StateDMA != 0
}
