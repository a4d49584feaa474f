//go:build mapledebug

package maple

import (
	"encoding/binary"

	"github.com/ardnew/softmaple/pkg"
)

// GuardSize is the size in bytes of each DMA guard region.
const GuardSize = 512

// DebugGuards reports whether DMA guard regions are compiled in.
const DebugGuards = true

// Paint fills both guard regions with SentinelWord.
func (b *DMABuffer) Paint() {
	pre, post := b.guards()
	for _, g := range [...][]byte{pre, post} {
		for i := 0; i+4 <= len(g); i += 4 {
			binary.LittleEndian.PutUint32(g[i:], SentinelWord)
		}
	}
}

// Check scans the guard regions, pre region first, and returns a
// *pkg.CorruptionError for the first word that no longer holds
// SentinelWord.
func (b *DMABuffer) Check(name string) error {
	pre, post := b.guards()
	regions := [...]struct {
		region pkg.GuardRegion
		data   []byte
	}{
		{pkg.GuardPre, pre},
		{pkg.GuardPost, post},
	}
	for _, r := range regions {
		for i := 0; i+4 <= len(r.data); i += 4 {
			if v := binary.LittleEndian.Uint32(r.data[i:]); v != SentinelWord {
				return &pkg.CorruptionError{
					Name:   name,
					Region: r.region,
					Offset: i / 4,
					Value:  v,
				}
			}
		}
	}
	return nil
}

// Verify checks the guard regions and panics with the *pkg.CorruptionError
// if either was overwritten. A damaged guard means the DMA engine or a
// driver wrote outside the buffer; execution does not continue past it.
func (b *DMABuffer) Verify(name string) {
	err := b.Check(name)
	if err == nil {
		return
	}
	ce := err.(*pkg.CorruptionError)
	pkg.LogError(pkg.ComponentSentinel, "*** BUFFER CHECK FAILURE ***",
		"buffer", name,
		"region", ce.Region.String(),
		"offset", ce.Offset,
		"found", ce.Value)
	panic(err)
}
