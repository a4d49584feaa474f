package maple

import (
	"fmt"

	"github.com/ardnew/softmaple/pkg"
)

// Address is an 8-bit bus address. Bits 7:6 hold the port. Bit 5 marks the
// main unit (or every unit on the port, as a destination), and bits 4:0
// are one-hot flags for sub-units 5 through 1.
type Address uint8

// Address field masks.
const (
	addrPortShift = 6
	addrPortMask  = 0xc0
	addrMainUnit  = 0x20
	addrSubUnits  = 0x1f
	addrUnitMask  = addrMainUnit | addrSubUnits
)

// unitPriority is the order in which unit bits are resolved by
// DecodeAddress: main unit first, then sub-units from the highest.
var unitPriority = [UnitCount]int{0, 5, 4, 3, 2, 1}

// unitBit returns the address bit identifying unit u.
func unitBit(u int) Address {
	if u == 0 {
		return addrMainUnit
	}
	return 1 << (u - 1)
}

// EncodeAddress returns the bus address of unit on port.
func EncodeAddress(port, unit int) (Address, error) {
	if port < 0 || port >= PortCount || unit < 0 || unit >= UnitCount {
		return 0, fmt.Errorf("%w: port %d, unit %d", pkg.ErrInvalidPortOrUnit, port, unit)
	}
	return Address(port<<addrPortShift) | unitBit(unit), nil
}

// MainUnitAddress returns the main unit address of port, which is also the
// address that reaches every unit on the port.
func MainUnitAddress(port int) (Address, error) {
	return EncodeAddress(port, 0)
}

// DecodeAddress splits a device address into its port and unit.
//
// Unit bits are tested main unit first, then sub-unit 5 down to 1, and the
// first one set wins. A main unit reports the sub-units plugged into it by
// setting their bits alongside its own in the source address of its
// responses, so those addresses decode to unit 0. An address with no unit
// bit set is rejected with pkg.ErrInvalidAddress.
func DecodeAddress(a Address) (port, unit int, err error) {
	unit, ok := a.unit()
	if !ok {
		pkg.LogWarn(pkg.ComponentBus, "invalid address", "addr", fmt.Sprintf("0x%02x", uint8(a)))
		return -1, -1, fmt.Errorf("%w: 0x%02x", pkg.ErrInvalidAddress, uint8(a))
	}
	return a.Port(), unit, nil
}

// unit resolves the unit number in priority order.
func (a Address) unit() (int, bool) {
	for _, u := range unitPriority {
		if a&unitBit(u) != 0 {
			return u, true
		}
	}
	return -1, false
}

// DecodeUnitAddress is DecodeAddress for addresses that must name exactly
// one unit, such as frame destinations. Addresses with more than one unit
// bit set are rejected with pkg.ErrMulticastAddress in addition to
// pkg.ErrInvalidAddress.
func DecodeUnitAddress(a Address) (port, unit int, err error) {
	if a.IsMulticast() {
		pkg.LogWarn(pkg.ComponentBus, "multicast address", "addr", fmt.Sprintf("0x%02x", uint8(a)))
		return -1, -1, fmt.Errorf("%w: %w: 0x%02x", pkg.ErrInvalidAddress, pkg.ErrMulticastAddress, uint8(a))
	}
	return DecodeAddress(a)
}

// Port returns the port number, 0 through 3.
func (a Address) Port() int {
	return int(a&addrPortMask) >> addrPortShift
}

// IsMainUnit reports whether the main unit bit is set.
func (a Address) IsMainUnit() bool {
	return a&addrMainUnit != 0
}

// IsMulticast reports whether more than one unit bit is set.
func (a Address) IsMulticast() bool {
	bits := a & addrUnitMask
	return bits&(bits-1) != 0
}

// SubUnits returns the sub-unit bits (bit 0 for sub-unit 1).
func (a Address) SubUnits() uint8 {
	return uint8(a & addrSubUnits)
}

// HasSubUnit reports whether the bit for sub-unit u (1 through 5) is set.
func (a Address) HasSubUnit(u int) bool {
	if u < 1 || u >= UnitCount {
		return false
	}
	return a&unitBit(u) != 0
}

// String returns the port letter and unit number, e.g. "A0" or "C3", or
// the raw value for an address with no unit bit.
func (a Address) String() string {
	unit, ok := a.unit()
	if !ok {
		return fmt.Sprintf("invalid(0x%02x)", uint8(a))
	}
	return fmt.Sprintf("%c%d", 'A'+a.Port(), unit)
}
