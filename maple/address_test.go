package maple

import (
	"errors"
	"testing"

	"github.com/ardnew/softmaple/pkg"
)

func TestEncodeAddress(t *testing.T) {
	tests := []struct {
		port, unit int
		want       Address
	}{
		{0, 0, 0x20},
		{0, 1, 0x01},
		{0, 5, 0x10},
		{1, 0, 0x60},
		{2, 3, 0x84},
		{3, 0, 0xe0},
		{3, 5, 0xd0},
	}

	for _, tt := range tests {
		got, err := EncodeAddress(tt.port, tt.unit)
		if err != nil {
			t.Errorf("EncodeAddress(%d, %d) error: %v", tt.port, tt.unit, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EncodeAddress(%d, %d) = %v, want %v", tt.port, tt.unit, got, tt.want)
		}
	}
}

func TestEncodeAddress_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		port, unit int
	}{
		{"port 4", 4, 0},
		{"unit 6", 0, 6},
		{"negative port", -1, 0},
		{"negative unit", 0, -1},
		{"both", 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeAddress(tt.port, tt.unit)
			if !errors.Is(err, pkg.ErrInvalidPortOrUnit) {
				t.Errorf("EncodeAddress(%d, %d) error = %v, want ErrInvalidPortOrUnit", tt.port, tt.unit, err)
			}
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	for port := 0; port < PortCount; port++ {
		for unit := 0; unit < UnitCount; unit++ {
			addr, err := EncodeAddress(port, unit)
			if err != nil {
				t.Fatalf("EncodeAddress(%d, %d) error: %v", port, unit, err)
			}
			p, u, err := DecodeAddress(addr)
			if err != nil {
				t.Fatalf("DecodeAddress(%v) error: %v", addr, err)
			}
			if p != port || u != unit {
				t.Errorf("DecodeAddress(EncodeAddress(%d, %d)) = (%d, %d)", port, unit, p, u)
			}
			if _, _, err := DecodeUnitAddress(addr); err != nil {
				t.Errorf("DecodeUnitAddress(%v) error: %v", addr, err)
			}
		}
	}
}

func TestDecodeAddress_NoUnitBits(t *testing.T) {
	for _, addr := range []Address{0x00, 0x40, 0x80, 0xc0} {
		port, unit, err := DecodeAddress(addr)
		if !errors.Is(err, pkg.ErrInvalidAddress) {
			t.Errorf("DecodeAddress(%v) error = %v, want ErrInvalidAddress", addr, err)
		}
		if port != -1 || unit != -1 {
			t.Errorf("DecodeAddress(%v) = (%d, %d), want (-1, -1)", addr, port, unit)
		}
	}
}

func TestDecodeAddress_Priority(t *testing.T) {
	tests := []struct {
		addr       Address
		port, unit int
	}{
		{0x21, 0, 0}, // main unit reporting sub-unit 1
		{0x3f, 0, 0}, // main unit reporting every sub-unit
		{0x5f, 1, 5}, // sub-unit bits only, highest wins
		{0x86, 2, 3},
		{0xc3, 3, 2},
	}

	for _, tt := range tests {
		port, unit, err := DecodeAddress(tt.addr)
		if err != nil {
			t.Errorf("DecodeAddress(%v) error: %v", tt.addr, err)
			continue
		}
		if port != tt.port || unit != tt.unit {
			t.Errorf("DecodeAddress(%v) = (%d, %d), want (%d, %d)", tt.addr, port, unit, tt.port, tt.unit)
		}
	}
}

func TestDecodeUnitAddress_Multicast(t *testing.T) {
	for _, addr := range []Address{0x21, 0x3f, 0x03, 0xd8} {
		_, _, err := DecodeUnitAddress(addr)
		if !errors.Is(err, pkg.ErrInvalidAddress) {
			t.Errorf("DecodeUnitAddress(%v) error = %v, want ErrInvalidAddress", addr, err)
		}
		if !errors.Is(err, pkg.ErrMulticastAddress) {
			t.Errorf("DecodeUnitAddress(%v) error = %v, want ErrMulticastAddress", addr, err)
		}
	}

	if _, _, err := DecodeUnitAddress(0x00); errors.Is(err, pkg.ErrMulticastAddress) {
		t.Error("empty address reported as multicast")
	}
}

func TestAddress_Accessors(t *testing.T) {
	addr := Address(0xa5) // port 2, main unit, sub-units 1 and 3

	if got := addr.Port(); got != 2 {
		t.Errorf("Port() = %d, want 2", got)
	}
	if !addr.IsMainUnit() {
		t.Error("IsMainUnit() = false, want true")
	}
	if !addr.IsMulticast() {
		t.Error("IsMulticast() = false, want true")
	}
	if got := addr.SubUnits(); got != 0x05 {
		t.Errorf("SubUnits() = 0x%02x, want 0x05", got)
	}

	for u, want := range []bool{false, true, false, true, false, false} {
		if got := addr.HasSubUnit(u); got != want {
			t.Errorf("HasSubUnit(%d) = %v, want %v", u, got, want)
		}
	}
	if addr.HasSubUnit(6) {
		t.Error("HasSubUnit(6) = true, want false")
	}

	single := Address(0x44)
	if single.IsMulticast() || single.IsMainUnit() {
		t.Errorf("0x44: IsMulticast=%v IsMainUnit=%v, want false/false", single.IsMulticast(), single.IsMainUnit())
	}
}

func TestMainUnitAddress(t *testing.T) {
	addr, err := MainUnitAddress(1)
	if err != nil {
		t.Fatalf("MainUnitAddress(1) error: %v", err)
	}
	if addr != 0x60 {
		t.Errorf("MainUnitAddress(1) = %v, want 0x60", addr)
	}
	if _, err := MainUnitAddress(4); !errors.Is(err, pkg.ErrInvalidPortOrUnit) {
		t.Errorf("MainUnitAddress(4) error = %v, want ErrInvalidPortOrUnit", err)
	}
}

func TestAddress_String(t *testing.T) {
	tests := []struct {
		addr Address
		want string
	}{
		{0x20, "A0"},
		{0x01, "A1"},
		{0x50, "B5"},
		{0x84, "C3"},
		{0xe0, "D0"},
		{0x3f, "A0"},
		{0x40, "invalid(0x40)"},
	}

	for _, tt := range tests {
		if got := tt.addr.String(); got != tt.want {
			t.Errorf("Address(0x%02x).String() = %q, want %q", uint8(tt.addr), got, tt.want)
		}
	}
}
