// Package checkers provides the checker framework for numacheck topology
// and route audits.
//
// Each pipeline stage is a self-contained checker module that can be invoked
// via CLI flags or exposed as an MCP tool. Stages declare dependencies on
// earlier stages and exchange data exclusively through the shared run
// context: topology fills the interface/device/NUMA maps, routes fills the
// per-interface destination lists, and probe consumes both.
package checkers
