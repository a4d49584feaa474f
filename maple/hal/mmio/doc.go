// Package mmio implements the maple bus register HAL over a memory-mapped
// register window on Linux.
//
// The register block is mapped from a physical memory device (by default
// /dev/mem) with [golang.org/x/sys/unix.Mmap]. The mapping starts at the
// page containing the block, so the base address need not be page aligned:
//
//	regs := mmio.New("", hal.BaseAddress)
//	drv := maple.New(regs)
//	if err := drv.Init(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Shutdown()
//
// Every register access is a single aligned 32-bit load or store. Mapping
// /dev/mem normally requires root privileges.
package mmio
