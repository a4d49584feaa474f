package maple

import (
	"fmt"

	"github.com/ardnew/softmaple/pkg"
)

// FrameHeaderSize is the size of a frame header in bytes.
const FrameHeaderSize = 4

// MaxFrameWords is the largest payload length, in 32-bit words, a header
// can describe.
const MaxFrameWords = 255

// FrameHeader is the first word of every command and response frame. The
// payload that follows is Length 32-bit words and is device specific.
type FrameHeader struct {
	Command     uint8   // Command code (host) or response code (device)
	Destination Address // Receiving unit
	Source      Address // Sending unit
	Length      uint8   // Payload length in 32-bit words
}

// NewCommandHeader builds the header of a command frame from the host port
// to the given unit.
func NewCommandHeader(cmd Command, dest Address, words int) (FrameHeader, error) {
	if words < 0 || words > MaxFrameWords {
		return FrameHeader{}, fmt.Errorf("%w: frame length %d words", pkg.ErrInvalidParameter, words)
	}
	return FrameHeader{
		Command:     uint8(cmd),
		Destination: dest,
		Source:      Address(dest.Port() << addrPortShift),
		Length:      uint8(words),
	}, nil
}

// ParseFrameHeader parses raw bytes into a FrameHeader.
// Returns false if data is too short.
func ParseFrameHeader(data []byte, out *FrameHeader) bool {
	if len(data) < FrameHeaderSize {
		return false
	}
	out.Command = data[0]
	out.Destination = Address(data[1])
	out.Source = Address(data[2])
	out.Length = data[3]
	return true
}

// MarshalTo writes the header to buf.
// Returns the number of bytes written (4), or 0 if buf is too small.
func (h *FrameHeader) MarshalTo(buf []byte) int {
	if len(buf) < FrameHeaderSize {
		return 0
	}
	buf[0] = h.Command
	buf[1] = uint8(h.Destination)
	buf[2] = uint8(h.Source)
	buf[3] = h.Length
	return FrameHeaderSize
}

// Response interprets the command byte as a device response code.
func (h *FrameHeader) Response() ResponseCode {
	return ResponseCode(int8(h.Command))
}

// PayloadSize returns the payload length in bytes.
func (h *FrameHeader) PayloadSize() int {
	return int(h.Length) * 4
}

// String returns a one-line description of the header.
func (h *FrameHeader) String() string {
	return fmt.Sprintf("cmd=%d dst=%v src=%v len=%d", int8(h.Command), h.Destination, h.Source, h.Length)
}
