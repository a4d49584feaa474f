// Package prof captures runtime profiles of a bus driver process.
//
// It is conditionally compiled using the "profile" build tag:
//
//	go build -tags profile
//	go test -tags profile
//
// Without the tag every function is a no-op, so profiling hooks can stay in
// a program at no cost.
//
// A [Session] streams a CPU profile while it is open and enables mutex and
// block sampling, which show how long callers wait on the bus controller
// and driver locks while a transfer is polled. Closing the session writes
// the heap, mutex, and block snapshots next to the CPU profile:
//
//	s, err := prof.Start("profiles")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
// Snapshots can also be written at any time with [Write].
package prof
