package routes

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/numatools/numacheck/internal/output"
	"github.com/numatools/numacheck/internal/runner"
)

func writeRouteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write route file: %v", err)
	}
	return path
}

func TestParseRouteFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "via form",
			content: "10.0.0.0/8 via 10.0.0.1 dev eth0\n",
			want:    []string{"10.0.0.0/8"},
		},
		{
			name:    "dest gateway form",
			content: "10.1.2.0/24 10.1.2.1\n",
			want:    []string{"10.1.2.0/24"},
		},
		{
			name:    "comments and blanks contribute nothing",
			content: "# static routes for eth0\n\n   \n# another comment\n",
			want:    nil,
		},
		{
			name:    "order preserved",
			content: "10.0.0.0/8 via 10.0.0.1\n192.168.0.0/16 via 10.0.0.1\n172.16.0.0/12 via 10.0.0.1\n",
			want:    []string{"10.0.0.0/8", "192.168.0.0/16", "172.16.0.0/12"},
		},
		{
			name:    "leading whitespace trimmed before comment check",
			content: "   # indented comment\n   10.9.0.0/16 via 10.9.0.1\n",
			want:    []string{"10.9.0.0/16"},
		},
		{
			name:    "malformed token passed through",
			content: "not-a-cidr via 10.0.0.1\n",
			want:    []string{"not-a-cidr"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRouteFile(t, t.TempDir(), "route-eth0", tt.content)
			got, err := parseRouteFile(path)
			if err != nil {
				t.Fatalf("parseRouteFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseRouteFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRouteFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeRouteFile(t, dir, "route-eth0",
		"10.0.0.0/8 via 10.0.0.1 dev eth0\n192.168.10.0/24 via 192.168.10.1 dev eth0\n")

	first, err := parseRouteFile(path)
	if err != nil {
		t.Fatalf("first parse error: %v", err)
	}
	second, err := parseRouteFile(path)
	if err != nil {
		t.Fatalf("second parse error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parse differs: %v vs %v", first, second)
	}
}

func TestParseRouteFile_Missing(t *testing.T) {
	_, err := parseRouteFile(filepath.Join(t.TempDir(), "route-enp3s0"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestExtractRoutes(t *testing.T) {
	dir := t.TempDir()
	writeRouteFile(t, dir, "route-eth0", "192.168.10.0/24 via 192.168.10.1 dev eth0\n")

	rc := runner.NewRunContext(context.Background())
	rc.SetInterfaces([]string{"eth1", "eth0"})

	cfg := RoutesConfig{Dir: dir, Prefix: "route-"}
	out := output.NewBufferedOutput()
	extractRoutes(rc, cfg, out)

	if got := rc.Destinations["eth0"]; !reflect.DeepEqual(got, []string{"192.168.10.0/24"}) {
		t.Errorf("eth0 destinations = %v, want [192.168.10.0/24]", got)
	}
	if got := rc.Destinations["eth1"]; len(got) != 0 {
		t.Errorf("eth1 should have no destinations without a route file, got %v", got)
	}

	sawFound, sawMissing := false, false
	for _, line := range out.Lines() {
		if line.Message == "  eth0: route file found, 1 destination(s)" {
			sawFound = true
		}
		if line.Message == "  eth1: no route file" {
			sawMissing = true
		}
	}
	if !sawFound {
		t.Error("report should note the eth0 route file was found")
	}
	if !sawMissing {
		t.Error("report should note eth1 has no route file")
	}
}
