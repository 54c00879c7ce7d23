// Package ping implements the one-shot reachability probe: a single ICMP
// echo request on a raw socket bound to a specific source interface, with a
// fixed timeout and no retry. The binary outcome is all callers get; host
// down, no route and interface misconfiguration are indistinguishable.
package ping
