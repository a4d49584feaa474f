// Package maple implements the protocol and transaction-control layer of
// the maple peripheral bus.
//
// The bus connects the host to four ports, each with a main unit and up to
// five sub-units. This package owns the pieces every bus transaction needs
// and leaves scheduling and device drivers to its callers:
//
//   - Address packs a port and unit into the 8-bit bus address
//   - Functions and FormatFunctions interpret a device's function mask
//   - ResponseCode and TranslateResponse name device response codes
//   - Bus powers the bus and arms, starts, stops, and polls DMA transfers
//   - Gun records light-gun positions captured from the video interrupt
//   - Driver owns all of the above and the table of attached devices
//
// Hardware is reached through [hal.RegisterHAL] from the
// github.com/ardnew/softmaple/maple/hal package.
//
// # Transactions
//
// A transaction programs a command buffer, starts the DMA engine, and
// polls for completion:
//
//	buf, _ := maple.NewDMABuffer(1024)
//	// ... write command frames into buf.Bytes() ...
//	if err := drv.Bus().Arm(buf); err != nil {
//	    return err
//	}
//	if err := drv.Bus().Start(); err != nil {
//	    return err
//	}
//	for drv.Bus().IsActive() {
//	    // wait, or give up and call Stop
//	}
//	buf.Verify("recv")
//
// Starting a transfer while one is running, or without a programmed
// target, is rejected with [pkg.ErrDMAActive] or [pkg.ErrDMANotArmed].
//
// # Debug Builds
//
// Building with the "mapledebug" tag surrounds every [DMABuffer] with guard
// words that [DMABuffer.Verify] checks after a transfer:
//
//	go test -tags mapledebug ./maple/
package maple
