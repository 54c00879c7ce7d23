package mcp

import (
	"context"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type CheckFunction func(input *CheckToolInput) (*CheckToolOutput, error)

type CheckerRegistry struct {
	checkers map[string]CheckFunction
}

func NewCheckerRegistry() *CheckerRegistry {
	return &CheckerRegistry{
		checkers: make(map[string]CheckFunction),
	}
}

func (r *CheckerRegistry) Register(name string, fn CheckFunction) {
	r.checkers[name] = fn
}

func RunServer(registry *CheckerRegistry) error {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "numacheck",
		Version: "1.0.0",
	}, nil)

	for name, checker := range registry.checkers {
		addChecker(server, name, checker)
	}

	if err := server.Run(context.Background(), &mcpsdk.StdioTransport{}); err != nil {
		log.Printf("MCP server failed: %v", err)
		return err
	}

	return nil
}

func addChecker(server *mcpsdk.Server, name string, fn CheckFunction) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        name,
		Description: getDescription(name),
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, input CheckToolInput) (*mcpsdk.CallToolResult, CheckToolOutput, error) {
		output, err := fn(&input)
		if err != nil {
			return nil, CheckToolOutput{}, err
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: output.Report},
			},
		}, *output, nil
	})
}

func getDescription(name string) string {
	descriptions := map[string]string{
		"check_topology":     "Map each network interface to its PCI device and NUMA node",
		"check_routes":       "Extract static route destinations from per-interface route files",
		"check_reachability": "Probe each extracted route destination from its interface with a single ICMP echo",
		"check_all":          "Run the full topology, route and reachability audit",
	}

	if desc, ok := descriptions[name]; ok {
		return desc
	}
	return name
}
