package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/numatools/numacheck/checkers/common"
)

type Config struct {
	All          bool
	Topology     bool
	Routes       bool
	Probe        bool
	MCP          bool
	Debug        bool
	ShowVirtual  bool
	RouteDir     string
	ProbeTimeout time.Duration
}

func ParseFlags() *Config {
	cfg := &Config{}

	flag.BoolVar(&cfg.All, "all", false, "Run the full topology, route and reachability audit (same as no flags)")
	flag.BoolVar(&cfg.Topology, "topology", false, "Map interfaces to PCI devices and NUMA nodes")
	flag.BoolVar(&cfg.Routes, "routes", false, "Extract static route destinations per interface")
	flag.BoolVar(&cfg.Probe, "probe", false, "Probe each route destination from its interface")
	flag.BoolVar(&cfg.MCP, "mcp", false, "Run as an MCP server on stdio")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug output")
	flag.BoolVar(&cfg.ShowVirtual, "show-virtual", false, "Include interfaces with no backing PCI device (VPN tunnels, bridges, veths)")
	flag.StringVar(&cfg.RouteDir, "route-dir", common.RouteDir, "Directory holding route-<interface> files")
	flag.DurationVar(&cfg.ProbeTimeout, "probe-timeout", common.ProbeTimeout, "Timeout for individual reachability probes (e.g. 500ms, 2s)")

	flag.Parse()
	return cfg
}

// SelectedCheckers maps the stage flags to checker names. With no stage
// flags (or --all) the whole pipeline runs.
func (c *Config) SelectedCheckers() []string {
	if c.All || (!c.Topology && !c.Routes && !c.Probe) {
		return []string{"topology", "routes", "probe"}
	}

	var names []string
	if c.Topology {
		names = append(names, "topology")
	}
	if c.Routes {
		names = append(names, "routes")
	}
	if c.Probe {
		names = append(names, "probe")
	}
	return names
}

func ShowUsage() {
	fmt.Fprintf(os.Stderr, "Usage: numacheck [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
