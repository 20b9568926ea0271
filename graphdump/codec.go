package graphdump

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one YAML or JSON graph document. An empty input is an empty graph.
func Decode(r io.Reader) (*Graph, error) {
	var g Graph
	if err := yaml.NewDecoder(r).Decode(&g); err != nil {
		if errors.Is(err, io.EOF) {
			return &g, nil
		}
		return nil, fmt.Errorf("decode transit graph: %w", err)
	}
	return &g, nil
}

// Encode writes g as YAML.
func Encode(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode transit graph: %w", err)
	}
	return enc.Close()
}

// ReadFile decodes the graph stored at path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// WriteFile encodes g to path, replacing any existing file.
func WriteFile(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, g); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
