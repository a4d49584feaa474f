//go:build !mapledebug

package maple

// GuardSize is the size in bytes of each DMA guard region. Guards are only
// allocated in builds with the mapledebug tag.
const GuardSize = 0

// DebugGuards reports whether DMA guard regions are compiled in.
const DebugGuards = false

// Paint is a no-op when built without the "mapledebug" tag.
func (b *DMABuffer) Paint() {}

// Check always returns nil when built without the "mapledebug" tag.
func (b *DMABuffer) Check(_ string) error {
	return nil
}

// Verify is a no-op when built without the "mapledebug" tag.
func (b *DMABuffer) Verify(_ string) {}
