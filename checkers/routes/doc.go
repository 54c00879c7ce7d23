// Package routes provides the static-route extraction stage.
//
// For every interface the topology stage discovered, this checker looks for
// a route-<interface> file in the network-scripts directory and collects the
// first token of each non-comment line as a destination, preserving line
// order. Interfaces without a route file simply contribute zero
// destinations; no probe runs for them.
package routes
