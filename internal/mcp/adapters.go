package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/numatools/numacheck/checkers"
	"github.com/numatools/numacheck/checkers/common"
	"github.com/numatools/numacheck/checkers/probe"
	"github.com/numatools/numacheck/checkers/routes"
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/runner"
)

// RegisterAll wires every pipeline stage, plus the combined audit, into the
// MCP registry. Each tool call runs a fresh one-shot pipeline; nothing is
// cached between calls.
func RegisterAll(registry *CheckerRegistry) {
	registry.Register("check_topology", adaptStages("topology"))
	registry.Register("check_routes", adaptStages("routes"))
	registry.Register("check_reachability", adaptStages("probe"))
	registry.Register("check_all", adaptStages("topology", "routes", "probe"))
}

func adaptStages(names ...string) CheckFunction {
	return func(input *CheckToolInput) (*CheckToolOutput, error) {
		rc := runner.NewRunContext(context.Background()).
			WithShowVirtual(input.ShowVirtual)

		if input.RouteDir != "" {
			rc.SetCheckerConfig("routes", routes.RoutesConfig{
				Dir:    input.RouteDir,
				Prefix: common.RoutePrefix,
			})
		}
		if input.TimeoutSeconds > 0 {
			rc.SetCheckerConfig("probe", probe.ProbeConfig{
				Timeout: time.Duration(input.TimeoutSeconds) * time.Second,
			})
		}

		out := output.NewBufferedOutput()
		if err := checkers.RunPipeline(rc, checkers.Resolve(names), out); err != nil {
			return nil, err
		}

		results := make([]ProbeResult, len(rc.Results))
		unreachable := 0
		for i, r := range rc.Results {
			results[i] = ProbeResult{
				Interface:   r.Interface,
				Destination: r.Destination,
				Reachable:   r.Reachable,
			}
			if !r.Reachable {
				unreachable++
			}
		}

		return &CheckToolOutput{
			Results: results,
			Summary: fmt.Sprintf("%d interface(s), %d probe(s), %d unreachable",
				len(rc.Interfaces), len(rc.Results), unreachable),
			Report: out.Report(),
		}, nil
	}
}
