package maple

import (
	"errors"
	"testing"

	"github.com/ardnew/softmaple/pkg"
)

func TestNewDMABuffer(t *testing.T) {
	for _, size := range []int{4, 32, 1024, 8192} {
		buf, err := NewDMABuffer(size)
		if err != nil {
			t.Fatalf("NewDMABuffer(%d) error: %v", size, err)
		}
		if buf.Len() != size || len(buf.Bytes()) != size {
			t.Errorf("NewDMABuffer(%d): Len()=%d len(Bytes())=%d", size, buf.Len(), len(buf.Bytes()))
		}
		if cap(buf.Bytes()) != size {
			t.Errorf("NewDMABuffer(%d): cap(Bytes()) = %d, want %d", size, cap(buf.Bytes()), size)
		}
		if buf.Addr()%DMAAlignment != 0 {
			t.Errorf("NewDMABuffer(%d): Addr() = 0x%x not %d-byte aligned", size, buf.Addr(), DMAAlignment)
		}
		if err := buf.Check("new"); err != nil {
			t.Errorf("fresh buffer failed Check: %v", err)
		}
	}
}

func TestNewDMABuffer_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -4, 1, 6, 1023} {
		if _, err := NewDMABuffer(size); !errors.Is(err, pkg.ErrInvalidParameter) {
			t.Errorf("NewDMABuffer(%d) error = %v, want ErrInvalidParameter", size, err)
		}
	}
}

func TestDMABuffer_Words(t *testing.T) {
	buf, err := NewDMABuffer(16)
	if err != nil {
		t.Fatalf("NewDMABuffer error: %v", err)
	}

	buf.PutWord(0, 0x1c200001)
	buf.PutWord(3, 0xcafef00d)

	if got := buf.Word(0); got != 0x1c200001 {
		t.Errorf("Word(0) = 0x%08x, want 0x1c200001", got)
	}
	if got := buf.Word(3); got != 0xcafef00d {
		t.Errorf("Word(3) = 0x%08x, want 0xcafef00d", got)
	}

	b := buf.Bytes()
	if b[0] != 0x01 || b[3] != 0x1c {
		t.Errorf("word 0 not little-endian: % x", b[:4])
	}

	// A frame header written as a word parses back
	var h FrameHeader
	if !ParseFrameHeader(b, &h) {
		t.Fatal("ParseFrameHeader failed")
	}
	if Command(h.Command) != CmdDeviceInfo || h.Source != 0x20 || h.Length != 0x1c {
		t.Errorf("header = %+v", h)
	}
}
