package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/numatools/numacheck/checkers"
	"github.com/numatools/numacheck/checkers/common"
	"github.com/numatools/numacheck/checkers/probe"
	"github.com/numatools/numacheck/checkers/routes"
	"github.com/numatools/numacheck/internal/cli"
	"github.com/numatools/numacheck/internal/mcp"
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/ping"
	"github.com/numatools/numacheck/internal/runner"
	"github.com/numatools/numacheck/internal/sysfs"
)

const (
	exitEnumeration = 1
	exitPrivilege   = 2
)

func main() {
	cfg := cli.ParseFlags()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
		common.SetDebugMode(true)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	sysfs.SetLogger(log)
	ping.SetLogger(log)

	// Raw ICMP sockets and parts of sysfs need elevated privilege; check
	// once, before any discovery happens.
	if os.Geteuid() != 0 {
		fmt.Fprintln(os.Stderr, "numacheck: must run as root (raw ICMP sockets require CAP_NET_RAW)")
		os.Exit(exitPrivilege)
	}

	if cfg.MCP {
		registry := mcp.NewCheckerRegistry()
		mcp.RegisterAll(registry)
		if err := mcp.RunServer(registry); err != nil {
			os.Exit(1)
		}
		return
	}

	out := output.NewStreamingOutput(os.Stdout)
	out.Println("🧭 NUMA Topology & Route Checker")
	out.Println("================================")

	rc := runner.NewRunContext(context.Background()).
		WithShowVirtual(cfg.ShowVirtual).
		WithProbeTimeout(cfg.ProbeTimeout)

	if cfg.RouteDir != common.RouteDir {
		rc.SetCheckerConfig("routes", routes.RoutesConfig{
			Dir:    cfg.RouteDir,
			Prefix: common.RoutePrefix,
		})
	}
	if cfg.ProbeTimeout != common.ProbeTimeout {
		rc.SetCheckerConfig("probe", probe.ProbeConfig{
			Timeout: cfg.ProbeTimeout,
		})
	}

	selected := checkers.Resolve(cfg.SelectedCheckers())
	if err := checkers.RunPipeline(rc, selected, out); err != nil {
		fmt.Fprintf(os.Stderr, "numacheck: %v\n", err)
		os.Exit(exitEnumeration)
	}

	printSummary(rc, out)
}

// printSummary closes the report. Unreachable destinations are results, not
// errors, so the process exits 0 no matter how many probes failed.
func printSummary(rc *runner.RunContext, out output.Output) {
	unreachable := 0
	for _, r := range rc.Results {
		if !r.Reachable {
			unreachable++
		}
	}

	out.Header("📊 Audit Summary")
	out.Info("Interfaces mapped: %d", len(rc.Devices))
	out.Info("Destinations probed: %d", len(rc.Results))
	if unreachable > 0 {
		out.Info("Unreachable: %d", unreachable)
	} else if len(rc.Results) > 0 {
		out.Success("All probed destinations reachable")
	}
}
