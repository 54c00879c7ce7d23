package routes

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/numatools/numacheck/checkers/common"
	"github.com/numatools/numacheck/internal/checker"
	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/runner"
)

type RoutesChecker struct{}

type RoutesConfig struct {
	Dir    string
	Prefix string
}

func NewRoutesChecker() checker.Checker {
	return &RoutesChecker{}
}

func (c *RoutesChecker) Name() string {
	return "routes"
}

func (c *RoutesChecker) Description() string {
	return "Static route destinations per interface"
}

func (c *RoutesChecker) Icon() string {
	return "📍"
}

func (c *RoutesChecker) DefaultConfig() checker.CheckerConfig {
	return RoutesConfig{
		Dir:    common.RouteDir,
		Prefix: common.RoutePrefix,
	}
}

func (c *RoutesChecker) DefaultEnabled() bool {
	return true
}

func (c *RoutesChecker) Dependencies() []checker.Dependency {
	return []checker.Dependency{checker.DependencyTopology}
}

func (c *RoutesChecker) Run(rc *runner.RunContext, config checker.CheckerConfig, out output.Output) error {
	cfg := config.(RoutesConfig)
	extractRoutes(rc, cfg, out)
	return nil
}

func (c *RoutesChecker) MCPToolDefinition() *checker.MCPTool {
	return &checker.MCPTool{
		Name:        "check_routes",
		Description: "Extract static route destinations from per-interface route files",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"route_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory holding route-<interface> files",
					"default":     common.RouteDir,
				},
			},
			"required": []string{},
		},
	}
}

// extractRoutes reads route-<iface> for every discovered interface. A
// missing file is a normal outcome, not an error.
func extractRoutes(rc *runner.RunContext, cfg RoutesConfig, out output.Output) {
	out.Section("📍", "Extracting static routes...")

	if len(rc.Interfaces) == 0 {
		out.Info("ℹ️  No interfaces to inspect")
		return
	}

	for _, iface := range rc.Interfaces {
		file := filepath.Join(cfg.Dir, cfg.Prefix+iface)

		dests, err := parseRouteFile(file)
		if err != nil {
			if os.IsNotExist(err) {
				out.Info("%s: no route file", iface)
			} else {
				out.Warning("%s: cannot read route file: %v", iface, err)
			}
			rc.Destinations[iface] = nil
			continue
		}

		rc.Destinations[iface] = dests
		out.Info("%s: route file found, %d destination(s)", iface, len(dests))
		for _, dest := range dests {
			out.Detail("%s", dest)
		}
	}
}

// parseRouteFile extracts the destination from each non-comment line.
// The destination is the first whitespace-delimited token, which covers
// both "<dest> via <gw> dev <iface>" and "<dest> <gw>" forms. Tokens are
// passed through unvalidated; a malformed one just fails its probe later.
func parseRouteFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dests []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dests = append(dests, strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dests, nil
}
