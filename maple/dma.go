package maple

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/ardnew/softmaple/pkg"
)

// DMABuffer is a DMA command/response buffer aligned to DMAAlignment.
//
// In builds with the mapledebug tag the buffer is surrounded by GuardSize
// bytes of sentinel words on each side, which Verify checks after a
// transfer. In other builds GuardSize is zero and the checks compile away.
type DMABuffer struct {
	raw  []byte
	off  int // start of the data in raw
	size int
}

// NewDMABuffer allocates a buffer of size bytes. The size must be a
// positive multiple of 4.
func NewDMABuffer(size int) (*DMABuffer, error) {
	if size <= 0 || size%4 != 0 {
		return nil, fmt.Errorf("%w: dma buffer size %d", pkg.ErrInvalidParameter, size)
	}

	raw := make([]byte, size+2*GuardSize+DMAAlignment)
	pad := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) % DMAAlignment); rem != 0 {
		pad = DMAAlignment - rem
	}

	b := &DMABuffer{
		raw:  raw,
		off:  pad + GuardSize,
		size: size,
	}
	b.Paint()
	return b, nil
}

// Bytes returns the data region of the buffer.
func (b *DMABuffer) Bytes() []byte {
	return b.raw[b.off : b.off+b.size : b.off+b.size]
}

// Len returns the size of the data region in bytes.
func (b *DMABuffer) Len() int {
	return b.size
}

// Addr returns the address of the first data byte.
func (b *DMABuffer) Addr() uintptr {
	return uintptr(unsafe.Pointer(&b.raw[b.off]))
}

// PutWord stores a little-endian 32-bit word at word index i.
func (b *DMABuffer) PutWord(i int, v uint32) {
	binary.LittleEndian.PutUint32(b.Bytes()[i*4:], v)
}

// Word loads the little-endian 32-bit word at word index i.
func (b *DMABuffer) Word(i int) uint32 {
	return binary.LittleEndian.Uint32(b.Bytes()[i*4:])
}

// guards returns the pre and post guard regions.
func (b *DMABuffer) guards() (pre, post []byte) {
	return b.raw[b.off-GuardSize : b.off], b.raw[b.off+b.size : b.off+b.size+GuardSize]
}
