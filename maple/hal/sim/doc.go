// Package sim provides an in-memory implementation of the maple bus
// register HAL.
//
// The simulated controller keeps one atomic word per register and records
// every write, so tests can assert the exact register traffic produced by
// the driver. Started DMA transfers complete either explicitly through
// [HAL.Complete] or automatically after a configured number of state
// register polls:
//
//	regs := sim.New(sim.WithCompleteAfter(3))
//	drv := maple.New(regs, maple.WithBeamCounter(regs))
//
// The HAL also serves as a [hal.BeamCounter] whose position is moved with
// [HAL.SetBeam].
package sim
