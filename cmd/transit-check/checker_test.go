package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/transit-section/config"
	"github.com/theoremus-urban-solutions/transit-section/transit"
)

func writeSection(t *testing.T, h transit.TransitHeader, size int) string {
	t.Helper()
	head, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	data := make([]byte, size)
	copy(data, head)
	path := filepath.Join(t.TempDir(), "section.transit")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write section: %v", err)
	}
	return path
}

func TestChecker_Section(t *testing.T) {
	tests := []struct {
		name   string
		header transit.TransitHeader
		size   int
		want   int
	}{
		{name: "valid", header: transit.NewTransitHeader(1, 40, 48, 48, 56, 64, 72, 80), size: 80, want: 0},
		{name: "not loaded", header: transit.TransitHeader{}, size: 80, want: 1},
		{name: "decreasing offsets", header: transit.NewTransitHeader(1, 48, 40, 48, 56, 64, 72, 80), size: 80, want: 1},
		{name: "truncated", header: transit.NewTransitHeader(1, 40, 48, 48, 56, 64, 72, 80), size: 60, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChecker(config.CheckConfig{MinVersion: 1})
			c.checkSection(writeSection(t, tt.header, tt.size))
			if c.violations != tt.want {
				t.Errorf("violations = %d, want %d", c.violations, tt.want)
			}
		})
	}
}

func TestChecker_Graph(t *testing.T) {
	fixtures := filepath.Join("..", "..", "graphdump", "testdata")

	c := newChecker(config.CheckConfig{Entities: true, MaxReported: 2})
	c.checkGraph(filepath.Join(fixtures, "graph.json"))
	if c.violations != 0 {
		t.Errorf("valid graph: violations = %d", c.violations)
	}

	c = newChecker(config.CheckConfig{Entities: true, MaxReported: 2})
	c.checkGraph(filepath.Join(fixtures, "broken.yml"))
	if c.violations != 6 {
		t.Errorf("broken graph: violations = %d, want 6", c.violations)
	}

	c = newChecker(config.CheckConfig{})
	c.checkGraph(filepath.Join(t.TempDir(), "missing.yml"))
	if c.violations != 1 {
		t.Errorf("missing graph: violations = %d, want 1", c.violations)
	}
}
