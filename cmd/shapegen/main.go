package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shape-tessellator/internal/batch"
	"shape-tessellator/internal/config"
	"shape-tessellator/internal/logging"
	"shape-tessellator/internal/tess"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .toml, .yaml)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Snapshot size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	format := flag.String("format", "", "Snapshot format: webp, tga or png (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	exports := flag.String("export", "", "Comma-separated mesh exports: json, obj")
	noCaption := flag.Bool("no-caption", false, "Omit the caption under each snapshot")
	shape := flag.String("shape", "", "Generate only this shape: cube, cylinder, cone or sphere")
	a := flag.Int("a", 0, "First shape parameter (subdivisions, radial divisions or slices)")
	b := flag.Int("b", 0, "Second shape parameter (height divisions or stacks)")
	yaw := flag.Float64("yaw", 0, "View yaw in degrees for -shape")
	pitch := flag.Float64("pitch", 0, "View pitch in degrees for -shape")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	logging.SetLogger(logging.NewText(os.Stderr, *verbose))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	var shapes []config.Shape
	if *shape != "" {
		kind, err := tess.ParseKind(*shape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		s := config.Shape{Kind: kind, A: *a, B: *b}
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "yaw":
				s.Yaw = yaw
			case "pitch":
				s.Pitch = pitch
			}
		})
		shapes = []config.Shape{s}
	}

	var exportList []string
	if *exports != "" {
		for _, e := range strings.Split(*exports, ",") {
			if e = strings.TrimSpace(e); e != "" {
				exportList = append(exportList, e)
			}
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Size:        *size,
		Supersample: *supersample,
		Format:      *format,
		Workers:     *workers,
		Export:      exportList,
		NoCaption:   *noCaption,
		Shapes:      shapes,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Shape tessellator → " + cfg.Format)
	fmt.Printf("Shapes: %d, Workers: %d\n", len(cfg.Shapes), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.FromConfig(&cfg), cfg.Shapes)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %-16s %6d tris  %s\n", r.Name, r.Triangles, strings.Join(append([]string{r.Image}, r.Exports...), " "))
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Generated: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors[:min(len(errors), 20)] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
