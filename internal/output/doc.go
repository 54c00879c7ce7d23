// Package output provides output interfaces for checkers, enabling both
// streaming and buffered output modes.
//
// The Output interface abstracts checker output, allowing the same checker
// code to drive the interactive CLI report and the MCP tool report:
//
//   - StreamingOutput: Writes directly to io.Writer as the pipeline runs
//   - BufferedOutput: Collects output in memory for MCP tool responses
//   - NoOpOutput: Discards everything, for tests
//
// Usage Example (CLI):
//
//	out := output.NewStreamingOutput(os.Stdout)
//	out.Section("🧭", "Discovering interface topology...")
//	out.OK("%s is reachable via %s", dest, iface)
//
// Usage Example (MCP):
//
//	out := output.NewBufferedOutput()
//	// ... checkers run ...
//	report := out.Report()
//
// All implementations are thread-safe with mutex protection.
package output
