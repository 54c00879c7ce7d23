package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	netDeviceLink   = "sys/class/net/%s/device"
	pciNUMANodeFile = "sys/bus/pci/devices/%s/numa_node"
)

var log = logrus.New()

func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Resolver answers the two topology questions the discoverer asks of the
// platform. Implementations other than FS exist only in tests.
type Resolver interface {
	// ResolveDevice returns the PCI bus address backing the interface, or
	// an error if the interface has no backing physical device.
	ResolveDevice(iface string) (string, error)

	// NUMANode returns the NUMA node for a PCI bus address. The second
	// return is false when the platform exposes no affinity for it.
	NUMANode(device string) (string, bool)
}

// FS resolves topology from the host's sysfs. Root is "/" in production and
// a fixture directory in tests.
type FS struct {
	Root string
}

func New() *FS {
	return &FS{Root: "/"}
}

func (s *FS) ResolveDevice(iface string) (string, error) {
	link := filepath.Join(s.Root, fmt.Sprintf(netDeviceLink, iface))

	target, err := os.Readlink(link)
	if err != nil {
		log.WithFields(logrus.Fields{
			"interface": iface,
			"link":      link,
		}).Debug("no device symlink for interface")
		return "", fmt.Errorf("resolving device for %s: %w", iface, err)
	}

	device := filepath.Base(target)
	if device == "" || device == "." || device == "/" {
		return "", fmt.Errorf("resolving device for %s: empty target %q", iface, target)
	}
	return device, nil
}

func (s *FS) NUMANode(device string) (string, bool) {
	file := filepath.Join(s.Root, fmt.Sprintf(pciNUMANodeFile, device))

	buf, err := os.ReadFile(file)
	if err != nil {
		log.WithFields(logrus.Fields{
			"device": device,
			"file":   file,
		}).Debug("no numa_node attribute for device")
		return "", false
	}

	node := strings.TrimSpace(string(buf))
	// Firmware that exposes no locality reports -1; treat it the same as
	// a missing attribute.
	if node == "" || node == "-1" {
		return "", false
	}
	return node, true
}
