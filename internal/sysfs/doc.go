// Package sysfs reads network interface hardware topology from the kernel's
// sysfs tree: the /sys/class/net/<iface>/device symlink names the backing
// PCI device, and /sys/bus/pci/devices/<addr>/numa_node names its NUMA
// affinity. Both reads are best-effort; virtual interfaces have no device
// symlink and some platforms expose no NUMA locality at all.
package sysfs
