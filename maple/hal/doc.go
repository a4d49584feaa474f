// Package hal defines the hardware abstraction consumed by the maple bus
// driver.
//
// The bus controller is driven entirely through a handful of 32-bit
// memory-mapped registers: bus enable, DMA state, DMA target address, bus
// speed, and two reset registers. [RegisterHAL] exposes them as symbolic
// [Register] values so the driver core never deals in raw addresses.
//
// Two implementations are provided:
//
//   - [github.com/ardnew/softmaple/maple/hal/sim]: an in-memory register
//     file that completes DMA transfers on its own, for tests and examples
//   - [github.com/ardnew/softmaple/maple/hal/mmio]: a memory-mapped
//     register window on Linux
//
// [BeamCounter] supplies the video beam position sampled when a light gun
// reports a pulse.
package hal
