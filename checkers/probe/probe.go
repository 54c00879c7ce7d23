package probe

import (
	"time"

	"github.com/numatools/numacheck/checkers/common"
	"github.com/numatools/numacheck/internal/checker"
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/ping"
	"github.com/numatools/numacheck/internal/runner"
)

type ProbeChecker struct{}

type ProbeConfig struct {
	Timeout time.Duration
	Prober  ping.Prober
}

func (cfg ProbeConfig) prober() ping.Prober {
	if cfg.Prober != nil {
		return cfg.Prober
	}
	return ping.NewICMPProber()
}

func NewProbeChecker() checker.Checker {
	return &ProbeChecker{}
}

func (c *ProbeChecker) Name() string {
	return "probe"
}

func (c *ProbeChecker) Description() string {
	return "Per-interface route destination reachability"
}

func (c *ProbeChecker) Icon() string {
	return "📡"
}

func (c *ProbeChecker) DefaultConfig() checker.CheckerConfig {
	return ProbeConfig{
		Timeout: common.ProbeTimeout,
	}
}

func (c *ProbeChecker) DefaultEnabled() bool {
	return true
}

func (c *ProbeChecker) Dependencies() []checker.Dependency {
	return []checker.Dependency{checker.DependencyTopology, checker.DependencyRoutes}
}

func (c *ProbeChecker) Run(rc *runner.RunContext, config checker.CheckerConfig, out output.Output) error {
	cfg := config.(ProbeConfig)
	probeDestinations(rc, cfg, out)
	return nil
}

func (c *ProbeChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "check_reachability",
		Description: "Probe each extracted route destination from its interface with a single ICMP echo",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"timeout_seconds": map[string]interface{}{
					"type":        "integer",
					"description": "Per-probe timeout in seconds",
					"default":     2,
				},
			},
			"required": []string{},
		},
	}
}

// probeDestinations runs one probe per (interface, destination) pair,
// serially, in discovery order. A failed probe is a result line, never an
// error; nothing here can abort the run.
func probeDestinations(rc *runner.RunContext, cfg ProbeConfig, out output.Output) {
	out.Section("📡", "Probing route destinations...")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = rc.ProbeTimeout
	}

	prober := cfg.prober()
	probed := 0

	for _, iface := range rc.Interfaces {
		for _, dest := range rc.Destinations[iface] {
			probed++
			err := prober.Probe(rc.Ctx, iface, dest, timeout)
			result := common.ProbeResult{
				Interface:   iface,
				Destination: dest,
				Reachable:   err == nil,
			}
			rc.Results = append(rc.Results, result)

			if result.Reachable {
				out.OK("%s is reachable via %s", dest, iface)
			} else {
				out.Fail("%s is NOT reachable via %s", dest, iface)
				out.Debug("Probe: %s via %s: %v", dest, iface, err)
			}
		}
	}

	if probed == 0 {
		out.Info("ℹ️  No destinations to probe")
	}
}
