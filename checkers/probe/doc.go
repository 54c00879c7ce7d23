// Package probe provides the reachability verification stage.
//
// Every (interface, destination) pair produced by the routes stage gets
// exactly one ICMP echo probe, sourced from that interface, with a short
// fixed timeout and no retry. Success prints an [OK] line, anything else
// prints [FAIL]; failed probes are routine results and never affect the
// process exit status.
package probe
