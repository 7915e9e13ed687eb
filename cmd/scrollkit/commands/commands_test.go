package commands

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestReplayDefaultScript(t *testing.T) {
	out := execute(t, "replay", "--every", "0", "--row-height", "40")
	for _, want := range []string{"content=2000.00", "mark start", "mark released", "mark settled", "mark tapped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "select [0 ") {
		t.Errorf("tap should select a row:\n%s", out)
	}
}

func TestReplayShortTableNeverScrolls(t *testing.T) {
	out := execute(t, "replay", "--every", "0", "--rows", "10", "--row-height", "40",
		"--height", "500", "--clamped")
	if !strings.Contains(out, "max=0.00") {
		t.Fatalf("expected zero max offset:\n%s", out)
	}
	if !strings.Contains(out, "mark settled frame=") || !strings.Contains(out, "offset=0.00") {
		t.Errorf("clamped table should stay at the top:\n%s", out)
	}
}

func TestReplayBadScript(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"replay", "--script", "does-not-exist.json"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestAgentVelocity(t *testing.T) {
	out := execute(t, "agent", "--every", "0", "--tps", "1", "--seconds", "1",
		"--area", "0,0,100,100", "--start", "0,50", "--velocity", "50,0", "--damping", "0")
	if !strings.Contains(out, "final (50.00,50.00)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestAgentMoveTo(t *testing.T) {
	out := execute(t, "agent", "--every", "0", "--seconds", "1",
		"--area", "0,0,400,300", "--start", "0,0", "--move-to", "300,0")
	if !strings.Contains(out, "final (300.00,0.00)") {
		t.Errorf("scripted move should finish on the destination:\n%s", out)
	}
}

func TestAgentBadEdgeMode(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"agent", "--edge", "sideways"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unknown edge mode")
	}
}
