package ping

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/sys/unix"
)

const protocolICMP = 1

var log = logrus.New()

func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Prober issues a single bounded-timeout reachability probe sourced from a
// specific local interface. Any error return means unreachable; callers do
// not distinguish failure causes.
type Prober interface {
	Probe(ctx context.Context, iface, dest string, timeout time.Duration) error
}

// ICMPProber probes with one ICMP echo request on a raw socket bound to the
// source interface. Requires CAP_NET_RAW (in practice: root).
type ICMPProber struct{}

func NewICMPProber() *ICMPProber {
	return &ICMPProber{}
}

func (p *ICMPProber) Probe(ctx context.Context, iface, dest string, timeout time.Duration) error {
	ip := net.ParseIP(dest)
	if ip == nil || ip.To4() == nil {
		// Destinations come through unvalidated; a CIDR or garbage token
		// is simply not probeable, same as ping refusing the argument.
		return fmt.Errorf("destination %q is not an IPv4 address", dest)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW, unix.IPPROTO_ICMP)
	if err != nil {
		return fmt.Errorf("opening raw ICMP socket: %w", err)
	}
	defer unix.Close(fd)

	if iface != "" {
		if err := unix.BindToDevice(fd, iface); err != nil {
			return fmt.Errorf("binding socket to %s: %w", iface, err)
		}
	}

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	if err := unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		return fmt.Errorf("setting receive timeout: %w", err)
	}

	id := os.Getpid() & 0xffff
	echo := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   id,
			Seq:  1,
			Data: []byte("numacheck"),
		},
	}
	wb, err := echo.Marshal(nil)
	if err != nil {
		return fmt.Errorf("marshaling echo request: %w", err)
	}

	sa := &unix.SockaddrInet4{}
	copy(sa.Addr[:], ip.To4())
	if err := unix.Sendto(fd, wb, 0, sa); err != nil {
		return fmt.Errorf("sending echo to %s via %s: %w", dest, iface, err)
	}

	log.WithFields(logrus.Fields{
		"interface":   iface,
		"destination": dest,
		"timeout":     timeout,
	}).Debug("echo request sent")

	deadline := time.Now().Add(timeout)
	rb := make([]byte, 1500)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("no echo reply from %s within %v", dest, timeout)
		}

		n, _, err := unix.Recvfrom(fd, rb, 0)
		if err != nil {
			// EAGAIN here is the receive timeout expiring.
			return fmt.Errorf("receiving echo reply from %s: %w", dest, err)
		}

		msg, ok := stripAndParse(rb[:n])
		if !ok {
			continue
		}
		reply, ok := msg.Body.(*icmp.Echo)
		if msg.Type != ipv4.ICMPTypeEchoReply || !ok {
			continue
		}
		// Raw sockets see every ICMP packet on the host; skip replies to
		// other processes' probes.
		if reply.ID != id {
			continue
		}
		return nil
	}
}

// stripAndParse removes the IPv4 header a raw socket prepends and decodes
// the ICMP payload.
func stripAndParse(b []byte) (*icmp.Message, bool) {
	if len(b) < ipv4.HeaderLen {
		return nil, false
	}
	hlen := int(b[0]&0x0f) << 2
	if hlen < ipv4.HeaderLen || len(b) < hlen {
		return nil, false
	}
	msg, err := icmp.ParseMessage(protocolICMP, b[hlen:])
	if err != nil {
		return nil, false
	}
	return msg, true
}
