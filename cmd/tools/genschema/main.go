package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isaacphi/forge/internal/ui/cli/schema"
)

func main() {
	var outFile, kind string
	flag.StringVar(&outFile, "out", "schema.json", "Output file path")
	flag.StringVar(&kind, "kind", schema.KindConfig, "Schema to generate (tool, config)")
	flag.Parse()

	// Convert to absolute path if relative
	if !filepath.IsAbs(outFile) {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
		outFile = filepath.Join(wd, outFile)
	}

	data, err := schema.Generate(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schema: %v\n", err)
		os.Exit(1)
	}

	// Ensure the directory exists
	dir := filepath.Dir(outFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", dir, err)
		os.Exit(1)
	}

	if err := os.WriteFile(outFile, append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema to %s: %v\n", outFile, err)
		os.Exit(1)
	}
	fmt.Printf("Schema written to %s\n", outFile)
}
