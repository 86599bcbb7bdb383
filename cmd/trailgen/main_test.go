package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/pkg/formats"
)

func TestRunPrintsStats(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Ticks = 30

	*flagEvery = 10
	defer func() { *flagEvery = 1 }()

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "triangles") {
		t.Errorf("missing header: %q", lines[0])
	}
	if fields := strings.Fields(lines[3]); fields[0] != "30" {
		t.Errorf("last row starts with %q, want tick 30", fields[0])
	}
}

func TestRunPrintsLastTick(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Ticks = 7

	*flagEvery = 0
	defer func() { *flagEvery = 1 }()

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + last tick:\n%s", len(lines), out.String())
	}
	if fields := strings.Fields(lines[1]); fields[0] != "7" {
		t.Errorf("row starts with %q, want tick 7", fields[0])
	}
}

func TestRunExportsOBJ(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Ticks = 90

	path := filepath.Join(t.TempDir(), "trail.obj")
	*flagOBJ = path
	*flagEvery = 0
	defer func() {
		*flagOBJ = ""
		*flagEvery = 1
	}()

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		t.Fatalf("ParseOBJFile: %v", err)
	}
	if obj.TriangleCount() == 0 {
		t.Error("exported mesh has no faces")
	}
}

func TestRunRejectsUnknownPath(t *testing.T) {
	cfg := config.Default()
	cfg.Emitter.Path = "spiral"
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown path")
	}
}

func TestPreviewExtentCoversPath(t *testing.T) {
	cfg := config.Default()
	cfg.Emitter.Radius = 4
	cfg.Tube.MaxRadius = 0.5
	if got := previewExtent(cfg); got != 6.5 {
		t.Errorf("previewExtent = %v, want 6.5", got)
	}
}
