// Package runner provides shared execution context for checker runs.
//
// The RunContext threads each stage's output to the stages that depend on
// it, replacing any notion of ambient global state: the topology checker
// writes the interface/device/NUMA maps, the routes checker writes the
// destination lists, and the probe checker reads both.
package runner
