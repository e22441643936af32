package batch

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"shape-tessellator/internal/config"
	"shape-tessellator/internal/export"
	"shape-tessellator/internal/logging"
	"shape-tessellator/internal/postprocess"
	"shape-tessellator/internal/raster"
	"shape-tessellator/internal/tess"
	"shape-tessellator/internal/viewmatrix"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      string   // snapshot encoding; empty skips the snapshot
	Export      []string // mesh export formats
	RenderSize  int
	Supersample int
	Workers     int
	Caption     bool
	Style       raster.Style
}

// FromConfig builds batch settings from a resolved config.
func FromConfig(c *config.Config) Config {
	return Config{
		OutputDir:   c.OutputDir,
		Format:      c.Format,
		Export:      c.Export,
		RenderSize:  c.RenderSize,
		Supersample: c.Supersample,
		Workers:     c.Workers,
		Caption:     c.ShowCaption(),
		Style:       raster.DefaultStyle(),
	}
}

// Result holds the outcome of processing one shape. File paths are
// relative to the output directory.
type Result struct {
	Name      string
	Shape     config.Shape
	Triangles int
	Image     string
	Exports   []string
	Success   bool
	Error     string
}

// Run processes all shapes using a worker pool. Results keep the input order.
func Run(cfg Config, shapes []config.Shape) []Result {
	total := len(shapes)
	results := make([]Result, total)
	var processed atomic.Int64
	log := logging.Logger()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "per_sec", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	shapeChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range shapeChan {
				results[idx] = processShape(cfg, shapes[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range shapes {
		shapeChan <- i
	}
	close(shapeChan)

	wg.Wait()
	close(done)

	return results
}

func processShape(cfg Config, s config.Shape) Result {
	res := Result{Name: s.Label(), Shape: s}
	log := logging.Logger().With("shape", res.Name)

	m, err := tess.Generate(s.Kind, s.A, s.B)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Triangles = m.NumTriangles()
	log.Debug("generated", "kind", s.Kind, "a", s.A, "b", s.B, "tris", res.Triangles)

	for _, format := range cfg.Export {
		rel := res.Name + "." + format
		err := writeFile(filepath.Join(cfg.OutputDir, rel), func(w io.Writer) error {
			switch format {
			case "json":
				return export.WriteJSON(w, res.Name, m)
			case "obj":
				return export.WriteOBJ(w, res.Name, m)
			}
			return fmt.Errorf("batch: unknown export format %q", format)
		})
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Exports = append(res.Exports, rel)
	}

	if cfg.Format != "" {
		view := viewmatrix.DefaultView()
		if s.Yaw != nil {
			view.Yaw = *s.Yaw
		}
		if s.Pitch != nil {
			view.Pitch = *s.Pitch
		}

		img := raster.RenderMesh(m, view, cfg.RenderSize, cfg.Supersample, cfg.Style)
		if cfg.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.RenderSize)
		}
		if cfg.Caption {
			img = postprocess.Caption(img, fmt.Sprintf("%s  %d tris", res.Name, res.Triangles), color.NRGBA{20, 20, 20, 255})
		}

		rel := res.Name + "." + cfg.Format
		err := writeFile(filepath.Join(cfg.OutputDir, rel), func(w io.Writer) error {
			return Encode(w, img, cfg.Format)
		})
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Image = rel
	}

	log.Debug("written", "image", res.Image, "exports", res.Exports)
	res.Success = true
	return res
}

// writeFile creates path (and its directory) and hands it to fill.
func writeFile(path string, fill func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
