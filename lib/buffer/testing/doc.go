// Package testing provides the shared contract test suite and benchmark suite
// for storage engines. Both engine packages run the same suites from their own
// _test files, so a contract change breaks loudly in both places and the two
// engines can be compared with identical benchmark workloads.
//
// The suites are parameterized over buffer.Factory; the growable flag passed
// to RunBufferTests states the growth policy of the engine under test. The
// caller knows that statically from the factory it passes in; the contract
// deliberately offers no way to ask a buffer which engine it is.
package testing
