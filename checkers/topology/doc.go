// Package topology provides the interface-to-hardware discovery stage.
//
// This checker enumerates the host's non-loopback network interfaces via
// netlink, resolves each to its backing PCI bus address through sysfs, and
// looks up the device's NUMA node affinity. Interfaces without a backing
// device (tunnels, bridges, veths) are skipped with a notice by default.
//
// Its output seeds the run context for the routes and reachability stages.
package topology
