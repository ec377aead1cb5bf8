// Package batch runs conversion queues. Items are processed strictly one
// at a time, in submission order, to bound peak memory and CPU contention;
// each item owns its pixel buffer, palette and label map exclusively while
// it runs, and no failure of one item ever stops the queue.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rastervec/internal/annotate"
	"rastervec/internal/imageio"
	"rastervec/internal/palette"
	"rastervec/internal/raster"
	"rastervec/internal/vector"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string // target format identifier; "svg" selects the vector path
	Colors    int
	Method    palette.Method
	Scale     float64
	Quality   float64
	MaxDim    int
	Despeckle float64

	// Annotator is optional. When set, each item is annotated after its
	// conversion and before the next item starts; annotation failures are
	// swallowed and the item stays successful.
	Annotator annotate.Annotator
}

// Item is one queued conversion. Format, Scale and Colors override the
// batch-wide settings for this item when non-zero.
type Item struct {
	Name   string // base name used for output naming
	Path   string
	Format string
	Scale  float64
	Colors int
}

// Result holds the outcome of processing one item.
type Result struct {
	Name        string   `json:"name"`
	OutputName  string   `json:"output_name,omitempty"`
	Success     bool     `json:"success"`
	Error       string   `json:"error,omitempty"`
	Bytes       int      `json:"bytes,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Run processes all items sequentially and returns one result per item, in
// submission order.
func Run(ctx context.Context, cfg Config, items []Item) []Result {
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = processItem(ctx, cfg, item)
		status := "ok"
		if !results[i].Success {
			status = "FAILED"
		}
		fmt.Printf("  [%d/%d] %s: %s\n", i+1, len(items), item.Name, status)
	}
	return results
}

func processItem(ctx context.Context, cfg Config, item Item) Result {
	res := Result{Name: item.Name}

	raw, err := os.ReadFile(item.Path)
	if err != nil {
		res.Error = fmt.Sprintf("read: %v", err)
		return res
	}
	img, srcFormat, err := imageio.Decode(bytes.NewReader(raw))
	if err != nil {
		res.Error = fmt.Sprintf("decode: %v", err)
		return res
	}

	format := item.Format
	if format == "" {
		format = cfg.Format
	}
	scale := item.Scale
	if scale <= 0 {
		scale = cfg.Scale
	}
	colors := item.Colors
	if colors <= 0 {
		colors = cfg.Colors
	}

	var out []byte
	if raster.NormalizeFormat(format) == "svg" {
		out, err = vector.Vectorize(img, vector.Options{
			Colors:    colors,
			Method:    cfg.Method,
			Despeckle: cfg.Despeckle,
			MaxDim:    cfg.MaxDim,
		})
	} else {
		buf := imageio.ToNRGBA(img)
		buf = raster.Resize(buf, scale)
		var enc bytes.Buffer
		err = raster.Encode(&enc, buf, format, cfg.Quality)
		out = enc.Bytes()
	}
	if err != nil {
		res.Error = fmt.Sprintf("encode: %v", err)
		return res
	}
	if len(out) == 0 {
		res.Error = "encode: codec produced no output"
		return res
	}

	res.OutputName = OutputName(item.Name, format)
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			res.Error = err.Error()
			return res
		}
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, res.OutputName), out, 0644); err != nil {
			res.Error = err.Error()
			return res
		}
	}
	res.Bytes = len(out)
	res.Success = true

	if cfg.Annotator != nil {
		ann, err := cfg.Annotator.Annotate(ctx, raw, "image/"+srcFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: annotate %s: %v\n", item.Name, err)
		} else {
			res.Description = ann.Description
			res.Tags = ann.Tags
		}
	}

	return res
}

// OutputName derives the output filename as <base>_converted.<ext>, where
// the extension is the plain format token ("svg", never "svg+xml").
func OutputName(base, format string) string {
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base + "_converted." + raster.NormalizeFormat(format)
}
