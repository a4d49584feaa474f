package maple

// Bus topology.
const (
	// PortCount is the number of ports on the bus.
	PortCount = 4

	// UnitCount is the number of addressable units per port: the main unit
	// and five sub-units.
	UnitCount = 6
)

// Memory addressing.
const (
	// MemAreaCacheMask strips the cache-area bits from an address, leaving
	// the physical address the DMA engine expects.
	MemAreaCacheMask = 0x1fffffff

	// DMAAlignment is the required alignment of a DMA command buffer.
	DMAAlignment = 32

	// SentinelWord fills DMA guard regions in debug builds.
	SentinelWord = 0xdeadbeef
)

// Bus timing.
const (
	// DefaultTimeout is the response timeout programmed at reset, in bus
	// ticks.
	DefaultTimeout = 50000
)
