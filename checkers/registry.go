package checkers

import (
	"github.com/numatools/numacheck/checkers/probe"
	"github.com/numatools/numacheck/checkers/routes"
	"github.com/numatools/numacheck/checkers/topology"
	"github.com/numatools/numacheck/internal/checker"
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/runner"
)

// AllCheckers returns the pipeline stages in execution order.
func AllCheckers() []checker.Checker {
	return []checker.Checker{
		topology.NewTopologyChecker(),
		routes.NewRoutesChecker(),
		probe.NewProbeChecker(),
	}
}

func GetChecker(name string) checker.Checker {
	for _, c := range AllCheckers() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Resolve expands the requested checker names with their dependencies and
// returns the result in pipeline order. Unknown names are ignored.
func Resolve(names []string) []checker.Checker {
	wanted := make(map[string]bool)

	var mark func(name string)
	mark = func(name string) {
		c := GetChecker(name)
		if c == nil || wanted[name] {
			return
		}
		wanted[name] = true
		for _, dep := range c.Dependencies() {
			mark(string(dep))
		}
	}
	for _, name := range names {
		mark(name)
	}

	var selected []checker.Checker
	for _, c := range AllCheckers() {
		if wanted[c.Name()] {
			selected = append(selected, c)
		}
	}
	return selected
}

// RunPipeline runs the given checkers sequentially against a shared run
// context. Per-checker config overrides come from the context; a checker
// error is fatal and stops the pipeline.
func RunPipeline(rc *runner.RunContext, selected []checker.Checker, out output.Output) error {
	for _, c := range selected {
		cfg := c.DefaultConfig()
		if override, ok := rc.GetCheckerConfig(c.Name()); ok {
			cfg = override
		}
		if err := c.Run(rc, cfg, out); err != nil {
			return err
		}
	}
	return nil
}
