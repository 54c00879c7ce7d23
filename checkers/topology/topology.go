package topology

import (
	"fmt"
	"net"
	"sort"

	"github.com/vishvananda/netlink"

	"github.com/numatools/numacheck/checkers/common"
	"github.com/numatools/numacheck/internal/checker"
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/runner"
	"github.com/numatools/numacheck/internal/sysfs"
)

type TopologyChecker struct{}

// LinkLister abstracts interface enumeration so tests can supply fixture
// links instead of talking to the kernel.
type LinkLister func() ([]netlink.Link, error)

type TopologyConfig struct {
	ShowVirtual bool
	Links       LinkLister
	Resolver    sysfs.Resolver
}

func (cfg TopologyConfig) listLinks() ([]netlink.Link, error) {
	if cfg.Links != nil {
		return cfg.Links()
	}
	return netlink.LinkList()
}

func (cfg TopologyConfig) resolver() sysfs.Resolver {
	if cfg.Resolver != nil {
		return cfg.Resolver
	}
	return sysfs.New()
}

func NewTopologyChecker() checker.Checker {
	return &TopologyChecker{}
}

func (c *TopologyChecker) Name() string {
	return "topology"
}

func (c *TopologyChecker) Description() string {
	return "Interface to PCI device and NUMA node mapping"
}

func (c *TopologyChecker) Icon() string {
	return "🧭"
}

func (c *TopologyChecker) DefaultConfig() checker.CheckerConfig {
	return TopologyConfig{
		ShowVirtual: false,
	}
}

func (c *TopologyChecker) DefaultEnabled() bool {
	return true
}

func (c *TopologyChecker) Dependencies() []checker.Dependency {
	return []checker.Dependency{}
}

func (c *TopologyChecker) Run(rc *runner.RunContext, config checker.CheckerConfig, out output.Output) error {
	cfg := config.(TopologyConfig)
	return discoverTopology(rc, cfg, out)
}

func (c *TopologyChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "check_topology",
		Description: "Map each network interface to its PCI device and NUMA node",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"show_virtual": map[string]interface{}{
					"type":        "boolean",
					"description": "Include interfaces with no backing PCI device (VPN tunnels, bridges, veths)",
					"default":     false,
				},
			},
			"required": []string{},
		},
	}
}

// discoverTopology enumerates non-loopback interfaces and fills the
// interface->device and device->NUMA maps on the run context. An
// enumeration failure is fatal; a single interface failing to resolve
// is a logged skip.
func discoverTopology(rc *runner.RunContext, cfg TopologyConfig, out output.Output) error {
	links, err := cfg.listLinks()
	if err != nil {
		return fmt.Errorf("listing network interfaces: %w", err)
	}

	out.Section("🧭", "Discovering interface topology...")

	byName := make(map[string]netlink.Link)
	var names []string
	for _, link := range links {
		attrs := link.Attrs()
		if attrs.Flags&net.FlagLoopback != 0 || attrs.Name == "lo" {
			continue
		}
		byName[attrs.Name] = link
		names = append(names, attrs.Name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		out.Info("ℹ️  No non-loopback interfaces found")
		rc.SetInterfaces(nil)
		return nil
	}

	resolver := cfg.resolver()
	showVirtual := cfg.ShowVirtual || rc.ShowVirtual
	var kept []string

	for _, name := range names {
		device, err := resolver.ResolveDevice(name)
		if err != nil {
			if showVirtual {
				out.Info("%s: virtual interface, no backing device", name)
				kept = append(kept, name)
			} else {
				out.Warning("skipping %s: no backing device", name)
			}
			continue
		}

		node, ok := resolver.NUMANode(device)
		if !ok {
			node = common.NUMAUnknown
		}

		rc.Devices[name] = device
		rc.NUMANodes[device] = node
		kept = append(kept, name)

		attrs := byName[name].Attrs()
		state := "down"
		if attrs.Flags&net.FlagUp != 0 {
			state = "up"
		}
		out.Info("%s: device %s, NUMA node %s (%s, mtu %d)", name, device, node, state, attrs.MTU)
	}

	rc.SetInterfaces(kept)
	return nil
}
