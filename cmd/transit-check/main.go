package main

import (
	"flag"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transit-section/config"
	"github.com/theoremus-urban-solutions/transit-section/internal"
)

func main() {
	sourceName := flag.String("source", "", "source name from config.sources[]")
	graphPath := flag.String("graph", "", "transit graph dump, YAML or JSON (overrides config)")
	sectionPath := flag.String("section", "", "serialized transit section (overrides config)")
	flag.Parse()

	internal.InitLogging("transit-check")
	if err := config.LoadAppConfig(); err != nil {
		log.Printf("config not loaded, using defaults: %v", err)
		config.Config, _ = config.Parse(nil)
	}

	src := config.SelectSource(*sourceName)
	if *graphPath != "" {
		src.GraphPath = *graphPath
	}
	if *sectionPath != "" {
		src.SectionPath = *sectionPath
	}
	if src.GraphPath == "" && src.SectionPath == "" {
		log.Fatal("nothing to check: pass -graph and/or -section, or configure a source")
	}

	c := newChecker(config.Config.Check)
	if src.GraphPath != "" {
		c.checkGraph(src.GraphPath)
	}
	if src.SectionPath != "" {
		c.checkSection(src.SectionPath)
	}

	if c.violations > 0 {
		log.Printf("%s: %d violation(s)", src.Name, c.violations)
		os.Exit(1)
	}
	log.Printf("%s: ok", src.Name)
}
