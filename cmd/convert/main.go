package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rastervec/internal/annotate"
	"rastervec/internal/batch"
	"rastervec/internal/config"
	"rastervec/internal/palette"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: converted)")
	format := flag.String("format", "", "Target format: svg, png, jpeg or webp (default: svg)")
	colors := flag.Int("colors", 0, "Palette size 2-64 (default: 16)")
	method := flag.String("palette", "", "Palette method: fixed, kmeans or dominant (default: fixed)")
	scale := flag.Float64("scale", 0, "Uniform scale factor for raster output (default: 1.0)")
	quality := flag.Float64("quality", 0, "Codec quality 0.1-1.0 (default: 0.92)")
	archivePath := flag.String("archive", "", "Also pack all outputs into this zip file")
	doAnnotate := flag.Bool("annotate", false, "Annotate items with the vision service")

	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: convert [flags] image...")
		flag.PrintDefaults()
		os.Exit(1)
	}

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

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Colors:    *colors,
		Method:    *method,
		Scale:     *scale,
		Quality:   *quality,
		Annotate:  *doAnnotate,
	})

	m, err := palette.ParseMethod(cfg.Method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var annotator annotate.Annotator
	if cfg.Annotate {
		a, err := annotate.NewRekognition()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: annotation disabled: %v\n", err)
		} else {
			annotator = a
		}
	}

	items := make([]batch.Item, len(inputs))
	for i, p := range inputs {
		items[i] = batch.Item{Name: filepath.Base(p), Path: p}
	}

	fmt.Printf("Converting %d items to %s\n", len(items), cfg.Format)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(context.Background(), batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Colors:    cfg.Colors,
		Method:    m,
		Scale:     cfg.Scale,
		Quality:   cfg.Quality,
		MaxDim:    cfg.MaxDim,
		Despeckle: cfg.Despeckle,
		Annotator: annotator,
	}, items)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Converted: %d/%d\n", success, len(items))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	// Optional archive of all outputs
	if *archivePath != "" {
		files := make(map[string][]byte)
		for _, r := range results {
			if !r.Success {
				continue
			}
			data, err := os.ReadFile(filepath.Join(cfg.OutputDir, r.OutputName))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: archive skip %s: %v\n", r.OutputName, err)
				continue
			}
			files[r.OutputName] = data
		}
		f, err := os.Create(*archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: archive create failed: %v\n", err)
		} else {
			if err := batch.Archive(f, files); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: archive write failed: %v\n", err)
			}
			f.Close()
			fmt.Printf("Archive: %s\n", *archivePath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
