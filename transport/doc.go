// Package transport is the narrow point-to-point and collective interface
// partition-given redistribution and forest validation consume (spec §6):
// non-blocking send/receive posted without suspension, a Waitall barrier,
// and one all-reduce OR used by forest validity checks. The package never
// talks MPI itself -- a real deployment supplies its own implementation of
// Transport; Local is an in-process stand-in used by this module's own
// tests, modeling ranks as goroutines over channels instead of wire I/O.
package transport
