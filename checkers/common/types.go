package common

import (
	"os"
	"sync/atomic"
	"time"
)

const (
	// ProbeTimeout bounds a single reachability probe.
	ProbeTimeout = 2 * time.Second

	// RouteDir is where per-interface static route files live.
	RouteDir = "/etc/sysconfig/network-scripts"

	// RoutePrefix names a route file for an interface, e.g. route-eth0.
	RoutePrefix = "route-"

	// NUMAUnknown is reported when sysfs exposes no NUMA affinity for a device.
	NUMAUnknown = "N/A"
)

// InterfaceTopology describes one non-loopback interface and its hardware
// placement. Device is empty for virtual interfaces with no backing PCI
// device; such interfaces never make it into the topology maps.
type InterfaceTopology struct {
	Name     string
	Device   string
	NUMANode string
	Up       bool
	MTU      int
}

// RouteEntry is a single destination parsed from an interface's route file.
type RouteEntry struct {
	Interface   string
	Destination string
}

// ProbeResult records the outcome of one reachability probe.
type ProbeResult struct {
	Interface   string
	Destination string
	Reachable   bool
}

var debugMode atomic.Bool

func init() {
	if os.Getenv("NUMACHECK_DEBUG") != "" {
		debugMode.Store(true)
	}
}

func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

func IsDebugMode() bool {
	return debugMode.Load()
}
