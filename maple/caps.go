package maple

import (
	"fmt"
)

// Function is a single capability bit of a device's function mask.
type Function uint32

// Device functions. Bit i, counted from the most significant bit, is
// 0x80000000 >> i.
const (
	FuncLightGun   Function = 0x80000000 >> 0
	FuncKeyboard   Function = 0x80000000 >> 1
	FuncArgun      Function = 0x80000000 >> 2
	FuncMicrophone Function = 0x80000000 >> 3
	FuncClock      Function = 0x80000000 >> 4
	FuncLCD        Function = 0x80000000 >> 5
	FuncMemoryCard Function = 0x80000000 >> 6
	FuncController Function = 0x80000000 >> 7
	FuncCamera     Function = 0x80000000 >> 12
	FuncMouse      Function = 0x80000000 >> 14
	FuncJumpPack   Function = 0x80000000 >> 15
)

// functionNames is indexed by bit position from the most significant bit.
// Empty entries are reserved.
var functionNames = [...]string{
	0:  "LightGun",
	1:  "Keyboard",
	2:  "Argun",
	3:  "Microphone",
	4:  "Clock",
	5:  "LCD",
	6:  "MemoryCard",
	7:  "Controller",
	12: "Camera",
	14: "Mouse",
	15: "JumpPack",
}

// functionName returns the name bound to bit position i, if any.
func functionName(i int) (string, bool) {
	if i < 0 || i >= len(functionNames) || functionNames[i] == "" {
		return "", false
	}
	return functionNames[i], true
}

// String returns the function name, or "unknown(0x%08x)" for a reserved or
// multi-bit value.
func (f Function) String() string {
	for i := 0; i < 32; i++ {
		if uint32(f) == uint32(0x80000000)>>i {
			if name, ok := functionName(i); ok {
				return name
			}
			break
		}
	}
	return fmt.Sprintf("unknown(0x%08x)", uint32(f))
}

// Functions is the 32-bit function mask a device reports in its device
// information.
type Functions uint32

// Has reports whether every bit of f is set in m.
func (m Functions) Has(f Function) bool {
	return f != 0 && uint32(m)&uint32(f) == uint32(f)
}

// List returns the set bits of m, most significant first.
func (m Functions) List() []Function {
	var out []Function
	for i := 0; i < 32; i++ {
		bit := uint32(0x80000000) >> i
		if uint32(m)&bit != 0 {
			out = append(out, Function(bit))
		}
	}
	return out
}

// String is FormatFunctions(uint32(m)).
func (m Functions) String() string {
	return FormatFunctions(uint32(m))
}

// FormatFunctions renders a function mask as a comma-separated list of
// names, most significant bit first. Set bits without a name render as
// "unknown(0x%08x)" carrying the isolated bit. A zero mask yields "".
func FormatFunctions(mask uint32) string {
	return string(AppendFunctions(nil, mask))
}

// AppendFunctions appends the FormatFunctions rendering of mask to dst.
func AppendFunctions(dst []byte, mask uint32) []byte {
	first := true
	for i := 0; i < 32; i++ {
		bit := uint32(0x80000000) >> i
		if mask&bit == 0 {
			continue
		}
		if !first {
			dst = append(dst, ", "...)
		}
		first = false
		if name, ok := functionName(i); ok {
			dst = append(dst, name...)
		} else {
			dst = fmt.Appendf(dst, "unknown(0x%08x)", bit)
		}
	}
	return dst
}
