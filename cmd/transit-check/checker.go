package main

import (
	"bytes"
	"errors"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transit-section/config"
	"github.com/theoremus-urban-solutions/transit-section/graphdump"
	"github.com/theoremus-urban-solutions/transit-section/transit"
)

// checker accumulates violations across the graph dump and the section.
type checker struct {
	cfg        config.CheckConfig
	violations int
}

func newChecker(cfg config.CheckConfig) *checker {
	return &checker{cfg: cfg}
}

func (c *checker) report(err error) {
	var errs graphdump.ValidationErrors
	if !errors.As(err, &errs) {
		c.violations++
		log.Printf("  %v", err)
		return
	}
	for i, e := range errs {
		if c.cfg.MaxReported > 0 && i >= c.cfg.MaxReported {
			log.Printf("  ... %d more", len(errs)-i)
			break
		}
		log.Printf("  %v", e)
	}
	c.violations += len(errs)
}

func (c *checker) checkGraph(path string) {
	g, err := graphdump.ReadFile(path)
	if err != nil {
		log.Printf("graph %s: %v", path, err)
		c.violations++
		return
	}
	log.Printf("graph %s: %d stops, %d gates, %d edges, %d transfers, %d lines, %d shapes, %d networks",
		path, len(g.Stops), len(g.Gates), len(g.Edges), len(g.Transfers), len(g.Lines), len(g.Shapes), len(g.Networks))

	if err := g.Validate(); err != nil {
		log.Printf("graph %s: record validation failed", path)
		c.report(err)
		return
	}
	if !c.cfg.Entities {
		return
	}
	if err := g.Entities().Validate(); err != nil {
		log.Printf("graph %s: entity validation failed", path)
		c.report(err)
	}
}

func (c *checker) checkSection(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("section %s: %v", path, err)
		c.violations++
		return
	}
	h, err := transit.ReadHeader(bytes.NewReader(data))
	if err != nil {
		log.Printf("section %s: %v", path, err)
		c.violations++
		return
	}
	if int(h.Version) < c.cfg.MinVersion {
		log.Printf("section %s: unsupported version %d", path, h.Version)
		c.violations++
		return
	}
	s, err := h.Sections(data)
	if err != nil {
		log.Printf("section %s: %v", path, err)
		c.violations++
		return
	}
	log.Printf("section %s: version %d, stops %dB, gates %dB, edges %dB, transfers %dB, lines %dB, shapes %dB, networks %dB",
		path, h.Version, len(s.Stops), len(s.Gates), len(s.Edges), len(s.Transfers), len(s.Lines), len(s.Shapes), len(s.Networks))
}
