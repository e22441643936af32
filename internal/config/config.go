package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"shape-tessellator/internal/tess"
)

// Supported snapshot encodings and mesh export formats.
var (
	Formats       = []string{"webp", "tga", "png"}
	ExportFormats = []string{"json", "obj"}
)

// Config holds output paths, render settings and the shapes to generate.
type Config struct {
	OutputDir string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`

	// Render settings
	RenderSize  int      `json:"render_size" toml:"render_size" yaml:"render_size"`
	Supersample int      `json:"supersample" toml:"supersample" yaml:"supersample"`
	Format      string   `json:"format" toml:"format" yaml:"format"`
	Workers     int      `json:"workers" toml:"workers" yaml:"workers"`
	Export      []string `json:"export" toml:"export" yaml:"export"`
	Caption     *bool    `json:"caption" toml:"caption" yaml:"caption"`

	Shapes []Shape `json:"shapes" toml:"shapes" yaml:"shapes"`

	// directory of the loaded file; relative paths resolve against it
	baseDir string
}

// Shape is one mesh to generate. A and B are the kind's parameters
// (see tess.Generate). Nil angles fall back to the default view.
type Shape struct {
	Name  string    `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Kind  tess.Kind `json:"kind" toml:"kind" yaml:"kind"`
	A     int       `json:"a" toml:"a" yaml:"a"`
	B     int       `json:"b" toml:"b" yaml:"b"`
	Yaw   *float64  `json:"yaw,omitempty" toml:"yaw,omitempty" yaml:"yaw,omitempty"`
	Pitch *float64  `json:"pitch,omitempty" toml:"pitch,omitempty" yaml:"pitch,omitempty"`
}

// Label returns Name, or a name derived from the kind and parameters.
func (s Shape) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Kind == tess.KindCube {
		return fmt.Sprintf("%s-%d", s.Kind, s.A)
	}
	return fmt.Sprintf("%s-%dx%d", s.Kind, s.A, s.B)
}

// DefaultShapes is the set rendered when neither the config nor the
// command line names any shape.
func DefaultShapes() []Shape {
	return []Shape{
		{Kind: tess.KindCube, A: 1},
		{Kind: tess.KindCube, A: 4},
		{Kind: tess.KindCylinder, A: 16, B: 4},
		{Kind: tess.KindCone, A: 16, B: 4},
		{Kind: tess.KindSphere, A: 16, B: 16},
	}
}

// Load reads a config file. The format follows the extension: .json,
// .toml, .yaml or .yml. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q: %s", ext, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Size        int
	Supersample int
	Format      string
	Workers     int
	Export      []string
	NoCaption   bool
	Shapes      []Shape
}

// Resolve applies CLI overrides, then fills anything still unset with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if len(flags.Export) > 0 {
		c.Export = flags.Export
	}
	if flags.NoCaption {
		off := false
		c.Caption = &off
	}
	if len(flags.Shapes) > 0 {
		c.Shapes = flags.Shapes
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if !filepath.IsAbs(c.OutputDir) && c.baseDir != "" && flags.OutputDir == "" {
		c.OutputDir = filepath.Join(c.baseDir, c.OutputDir)
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	for i, e := range c.Export {
		c.Export[i] = strings.ToLower(e)
	}
	if c.Caption == nil {
		on := true
		c.Caption = &on
	}
	if len(c.Shapes) == 0 {
		c.Shapes = DefaultShapes()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("config: unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	for _, e := range c.Export {
		if !slices.Contains(ExportFormats, e) {
			return fmt.Errorf("config: unknown export format %q (want one of %s)", e, strings.Join(ExportFormats, ", "))
		}
	}
	seen := make(map[string]bool, len(c.Shapes))
	for _, s := range c.Shapes {
		if seen[s.Label()] {
			return fmt.Errorf("config: duplicate shape name %q", s.Label())
		}
		seen[s.Label()] = true
	}
	return nil
}

// ShowCaption reports whether snapshots get a text caption.
func (c *Config) ShowCaption() bool {
	return c.Caption == nil || *c.Caption
}
