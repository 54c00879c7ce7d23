package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestStreamingOutput_Section(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Section("🧭", "Test Section")

	got := buf.String()
	want := "\n🧭 Test Section\n"
	if got != want {
		t.Errorf("Section() = %q, want %q", got, want)
	}
}

func TestStreamingOutput_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Info("eth0: device 0000:81:00.0, NUMA node 0")

	got := buf.String()
	want := "  eth0: device 0000:81:00.0, NUMA node 0\n"
	if got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestStreamingOutput_OK(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.OK("%s is reachable via %s", "10.0.0.1", "eth0")

	got := buf.String()
	want := "  [OK] 10.0.0.1 is reachable via eth0\n"
	if got != want {
		t.Errorf("OK() = %q, want %q", got, want)
	}
}

func TestStreamingOutput_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Fail("%s is NOT reachable via %s", "192.168.10.0/24", "eth0")

	got := buf.String()
	want := "  [FAIL] 192.168.10.0/24 is NOT reachable via eth0\n"
	if got != want {
		t.Errorf("Fail() = %q, want %q", got, want)
	}
}

func TestStreamingOutput_Warning(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Warning("skipping wg0: no backing device")

	got := buf.String()
	if !strings.Contains(got, "⚠️") {
		t.Errorf("Warning() should contain warning emoji, got %q", got)
	}
	if !strings.Contains(got, "skipping wg0") {
		t.Errorf("Warning() should contain message, got %q", got)
	}
}

func TestStreamingOutput_Header(t *testing.T) {
	buf := &bytes.Buffer{}
	out := NewStreamingOutput(buf)

	out.Header("📊 Audit Summary")

	got := buf.String()
	if !strings.Contains(got, "📊 Audit Summary\n") {
		t.Errorf("Header() should contain title, got %q", got)
	}
	if !strings.Contains(got, "=") {
		t.Errorf("Header() should underline title, got %q", got)
	}
}

func TestBufferedOutput_LinesAndLevels(t *testing.T) {
	out := NewBufferedOutput()

	out.Info("topology line")
	out.OK("dest is reachable via eth0")
	out.Fail("dest is NOT reachable via eth1")

	lines := out.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() = %d entries, want 3", len(lines))
	}
	if lines[1].Level != "ok" {
		t.Errorf("second line level = %q, want ok", lines[1].Level)
	}
	if lines[2].Level != "fail" {
		t.Errorf("third line level = %q, want fail", lines[2].Level)
	}
}

func TestBufferedOutput_Report(t *testing.T) {
	out := NewBufferedOutput()

	out.Info("first")
	out.Info("second")

	report := out.Report()
	if report != "  first\n  second\n" {
		t.Errorf("Report() = %q", report)
	}
}

func TestBufferedOutput_Flush(t *testing.T) {
	out := NewBufferedOutput()
	out.Info("buffered line")

	buf := &bytes.Buffer{}
	out.Flush(buf)

	if !strings.Contains(buf.String(), "buffered line") {
		t.Errorf("Flush() output = %q", buf.String())
	}
}
