package pkg

import (
	"errors"
	"fmt"
)

// Addressing and argument errors.
var (
	// ErrInvalidPortOrUnit indicates a port or unit number out of range.
	ErrInvalidPortOrUnit = errors.New("invalid port or unit")

	// ErrInvalidPort indicates a port number out of range.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidAddress indicates a bus address with no recognizable unit bit.
	ErrInvalidAddress = errors.New("invalid bus address")

	// ErrMulticastAddress indicates a bus address naming more than one unit
	// where a single unit was required.
	ErrMulticastAddress = errors.New("multicast bus address")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrFrameTooShort indicates the frame data is too short.
	ErrFrameTooShort = errors.New("frame too short")
)

// DMA transaction errors.
var (
	// ErrDMAActive indicates a DMA transfer is already in progress.
	ErrDMAActive = errors.New("dma transfer in progress")

	// ErrDMANotArmed indicates DMA was started without a target address.
	ErrDMANotArmed = errors.New("dma target not programmed")

	// ErrBufferCorruption indicates a DMA guard region was overwritten.
	ErrBufferCorruption = errors.New("dma buffer corruption")
)

// Driver lifecycle errors.
var (
	// ErrAlreadyRunning indicates the driver is already initialized.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the driver is not initialized.
	ErrNotRunning = errors.New("not running")

	// ErrNoDevice indicates no device is attached at the given port and unit.
	ErrNoDevice = errors.New("device not present")
)

// Device response errors, one per negative response code.
var (
	// ErrFileError indicates the device reported a file error.
	ErrFileError = errors.New("device file error")

	// ErrAgain indicates the device asked for the command to be resent.
	ErrAgain = errors.New("device requested retransmit")

	// ErrBadCommand indicates the device did not recognize the command.
	ErrBadCommand = errors.New("unknown command")

	// ErrBadFunction indicates the device does not support the function.
	ErrBadFunction = errors.New("function not supported")

	// ErrNoResponse indicates no device answered the transaction.
	ErrNoResponse = errors.New("no response")
)

// GuardRegion identifies which side of a DMA buffer a guard word belongs to.
type GuardRegion int

// Guard regions.
const (
	GuardPre  GuardRegion = iota // Guard words before the buffer
	GuardPost                    // Guard words after the buffer
)

// String returns "pre" or "post".
func (r GuardRegion) String() string {
	if r == GuardPre {
		return "pre"
	}
	return "post"
}

// CorruptionError describes an overwritten DMA guard word.
type CorruptionError struct {
	Name   string      // Buffer name given by the caller
	Region GuardRegion // Guard region containing the bad word
	Offset int         // Word offset within the guard region
	Value  uint32      // Word found in place of the sentinel
}

// Error implements the error interface.
func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s: %s failed at %s-offset %d (found 0x%08x)",
		ErrBufferCorruption, e.Name, e.Region, e.Offset, e.Value)
}

// Unwrap returns ErrBufferCorruption.
func (e *CorruptionError) Unwrap() error {
	return ErrBufferCorruption
}
