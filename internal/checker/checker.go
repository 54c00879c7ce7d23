package checker

import (
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/runner"
)

type CheckerConfig interface{}

// Dependency names a pipeline stage whose output a checker consumes from the
// RunContext. The registry runs dependencies before the checker itself.
type Dependency string

const (
	DependencyTopology Dependency = "topology"
	DependencyRoutes   Dependency = "routes"
)

// Checker is one pipeline stage. Run reads its inputs from and writes its
// results to the shared RunContext; human-readable report lines go to out.
//
// A returned error is fatal for the whole run (an unmet environment
// precondition such as the interface listing mechanism being unavailable).
// Per-item failures are report lines, never errors.
type Checker interface {
	Name() string
	Description() string
	Icon() string
	DefaultConfig() CheckerConfig
	DefaultEnabled() bool
	Dependencies() []Dependency
	Run(rc *runner.RunContext, config CheckerConfig, out output.Output) error
	MCPToolDefinition() *MCPTool
}

type MCPTool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}
