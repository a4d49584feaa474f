package maple

import (
	"fmt"
	"sync/atomic"

	"github.com/ardnew/softmaple/maple/hal"
	"github.com/ardnew/softmaple/pkg"
)

// noPort is the armed-port value when no port is armed.
const noPort = -1

// Gun tracks light-gun position capture.
//
// At most one port is armed at a time. Positions are captured by Capture or
// Pulse, which are called from the video interrupt handler, and read by
// ReadPosition from ordinary code. Each (x, y) pair is packed into a single
// 64-bit word and published atomically, so a reader sees either the
// previous pair or the next one, never half of each. Captures that land
// between two reads overwrite each other.
type Gun struct {
	beam hal.BeamCounter

	armed atomic.Int32
	last  atomic.Uint64
	ports [PortCount]atomic.Uint64
}

// NewGun creates a disarmed light-gun tracker. beam may be nil, in which
// case Pulse never captures.
func NewGun(beam hal.BeamCounter) *Gun {
	g := &Gun{beam: beam}
	g.armed.Store(noPort)
	return g
}

// Arm selects port for capture, disarming any other port.
func (g *Gun) Arm(port int) error {
	if port < 0 || port >= PortCount {
		return fmt.Errorf("%w: %d", pkg.ErrInvalidPort, port)
	}
	if prev := g.armed.Swap(int32(port)); prev != noPort && prev != int32(port) {
		pkg.LogDebug(pkg.ComponentGun, "gun disarmed", "port", prev)
	}
	pkg.LogDebug(pkg.ComponentGun, "gun armed", "port", port)
	return nil
}

// Disarm stops capture on every port.
func (g *Gun) Disarm() {
	if prev := g.armed.Swap(noPort); prev != noPort {
		pkg.LogDebug(pkg.ComponentGun, "gun disarmed", "port", prev)
	}
}

// ArmedPort returns the armed port, if any.
func (g *Gun) ArmedPort() (int, bool) {
	p := g.armed.Load()
	return int(p), p != noPort
}

// Capture records (x, y) as the position seen by the gun on port. It does
// nothing and returns false unless port is armed. Capture does not block
// or allocate and is safe to call from the interrupt handler.
func (g *Gun) Capture(port, x, y int) bool {
	if port < 0 || port >= PortCount || g.armed.Load() != int32(port) {
		return false
	}
	v := packPosition(x, y)
	g.ports[port].Store(v)
	g.last.Store(v)
	return true
}

// Pulse captures the current beam position for port. It is called when the
// gun on port reports that it saw the beam.
func (g *Gun) Pulse(port int) bool {
	if g.beam == nil {
		return false
	}
	x, y := g.beam.BeamPosition()
	return g.Capture(port, x, y)
}

// ReadPosition returns the most recently captured position.
func (g *Gun) ReadPosition() (x, y int) {
	return unpackPosition(g.last.Load())
}

// PortPosition returns the last position captured on port.
func (g *Gun) PortPosition(port int) (x, y int, err error) {
	if port < 0 || port >= PortCount {
		return 0, 0, fmt.Errorf("%w: %d", pkg.ErrInvalidPort, port)
	}
	x, y = unpackPosition(g.ports[port].Load())
	return x, y, nil
}

// packPosition stores x in the high word and y in the low word.
func packPosition(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

func unpackPosition(v uint64) (x, y int) {
	return int(int32(uint32(v >> 32))), int(int32(uint32(v)))
}
