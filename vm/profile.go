package vm

// ProfileBegin and ProfileEnd are optional hooks a driver can reassign to
// measure per-opcode execution time or build a trace. They are no-ops by
// default and are called unconditionally around every Step, so a driver
// that does not care about profiling pays only the cost of an empty call.
//
// This mirrors an extern hook a weak-linked host symbol would provide in
// a language that has that mechanism; Go has no such mechanism, so a
// pair of reassignable package-level function variables stands in for it.
var (
	ProfileBegin = func() {}
	ProfileEnd   = func(opcode byte) {}
)
