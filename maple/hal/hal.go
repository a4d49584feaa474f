package hal

import (
	"context"
	"fmt"
)

// Register identifies a bus controller register by its byte offset from
// the controller base address.
type Register uint32

// Bus controller registers.
const (
	RegDMAAddr Register = 0x04 // DMA command table address
	RegReset2  Register = 0x10 // Reset register #2
	RegEnable  Register = 0x14 // Bus enable
	RegState   Register = 0x18 // DMA state
	RegSpeed   Register = 0x80 // Bus speed and response timeout
	RegReset1  Register = 0x8c // Reset register #1
)

// BaseAddress is the physical address of the bus controller register block.
const BaseAddress = 0x005f6c00

// WindowSize is the size in bytes of the register block.
const WindowSize = 0x100

// Register values.
const (
	EnableDisabled = 0x00000000 // RegEnable: bus disabled
	EnableEnabled  = 0x00000001 // RegEnable: bus enabled

	StateIdle = 0x00000000 // RegState: no transfer
	StateDMA  = 0x00000001 // RegState: transfer in progress

	Reset1Magic = 0x6155404f // RegReset1 unlock value
	Reset2Magic = 0x00000000 // RegReset2 value

	Speed2Mbps = 0x00000000 // RegSpeed: 2 Mbit/s bus clock
)

// SpeedTimeout returns the RegSpeed field for a response timeout of n
// bus ticks.
func SpeedTimeout(n uint16) uint32 {
	return uint32(n) << 16
}

// Registers lists every defined register in offset order.
var Registers = [...]Register{
	RegDMAAddr,
	RegReset2,
	RegEnable,
	RegState,
	RegSpeed,
	RegReset1,
}

// String returns the register mnemonic.
func (r Register) String() string {
	switch r {
	case RegDMAAddr:
		return "DMAADDR"
	case RegReset2:
		return "RESET2"
	case RegEnable:
		return "ENABLE"
	case RegState:
		return "STATE"
	case RegSpeed:
		return "SPEED"
	case RegReset1:
		return "RESET1"
	default:
		return fmt.Sprintf("REG(0x%02x)", uint32(r))
	}
}

// Offset returns the byte offset of the register.
func (r Register) Offset() uint32 {
	return uint32(r)
}

// RegisterHAL defines the Hardware Abstraction Layer interface for the bus
// controller registers.
//
// Implementations perform single 32-bit accesses; a read or write is never
// split. Accesses are not otherwise synchronized: the driver serializes
// transactions itself.
type RegisterHAL interface {
	// Init prepares the register window for access.
	Init(ctx context.Context) error

	// Close releases the register window. After Close returns, the HAL
	// should not be used.
	Close() error

	// Read32 reads a 32-bit register.
	Read32(reg Register) uint32

	// Write32 writes a 32-bit register.
	Write32(reg Register, value uint32)
}

// BeamCounter reports the current video beam position. It is read from
// the light-gun pulse handler, which runs in interrupt context.
type BeamCounter interface {
	BeamPosition() (x, y int)
}

// BeamCounterFunc adapts a function to the BeamCounter interface.
type BeamCounterFunc func() (x, y int)

// BeamPosition calls f.
func (f BeamCounterFunc) BeamPosition() (x, y int) {
	return f()
}
