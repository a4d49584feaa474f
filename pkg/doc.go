// Package pkg provides shared utilities for the softmaple bus driver.
//
// This package contains common functionality used by the driver core and
// its hardware abstraction layers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for addressing, DMA, and device response errors
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with bus-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentBus, "bus enabled")
//
// # Errors
//
// Common errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrInvalidAddress) {
//	    // Handle malformed address
//	}
//
// Guard-word failures found by the debug DMA sentinel are reported as
// [*CorruptionError], which unwraps to [ErrBufferCorruption].
package pkg
