package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/brightquad/internal/patch"
)

// Environment variables read by ApplyEnv and Load.
const (
	EnvConfigFile     = "BRIGHTQUAD_CONFIG"
	EnvPatchSize      = "BRIGHTQUAD_PATCH_SIZE"
	EnvNumTopPatches  = "BRIGHTQUAD_NUM_TOP_PATCHES"
	EnvOutputFilename = "BRIGHTQUAD_OUTPUT"
	EnvExactCentroid  = "BRIGHTQUAD_EXACT_CENTROID"
	EnvVertexOrder    = "BRIGHTQUAD_VERTEX_ORDER"
	EnvLineColor      = "BRIGHTQUAD_LINE_COLOR"
	EnvLineThickness  = "BRIGHTQUAD_LINE_THICKNESS"
	EnvLogLevel       = "BRIGHTQUAD_LOG_LEVEL"
)

// Vertex orderings applied before the area is measured.
const (
	OrderRowMajor = "row-major"
	OrderPolar    = "polar"
)

// Config holds the parameters of one brightness analysis run.
type Config struct {
	// PatchSize is the side length of the square patches in pixels.
	PatchSize int `json:"patch_size"`

	// NumTopPatches is how many of the brightest patches become vertices.
	NumTopPatches int `json:"num_top_patches"`

	// OutputFilename is where the annotated image is written.
	OutputFilename string `json:"output_filename"`

	// ExactCentroid maps each patch to its central pixel (PatchSize/2)
	// instead of the fixed offset of 2.
	ExactCentroid bool `json:"exact_centroid"`

	// VertexOrder is "row-major" or "polar".
	VertexOrder string `json:"vertex_order"`

	// LineColor is the hex colour of the drawn polygon, e.g. "#FF0000".
	LineColor string `json:"line_color"`

	// LineThickness is the stroke width in pixels.
	LineThickness int `json:"line_thickness"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		PatchSize:      5,
		NumTopPatches:  4,
		OutputFilename: "updated_image.png",
		ExactCentroid:  false,
		VertexOrder:    OrderRowMajor,
		LineColor:      "#FF0000",
		LineThickness:  2,
	}
}

// Load builds the runtime configuration: defaults, then the JSON file named
// by BRIGHTQUAD_CONFIG (if set), then environment overrides. A .env file in
// the working directory is loaded first when present.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a JSON file. Fields missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from BRIGHTQUAD_* environment variables.
// Unset variables leave the field alone.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvPatchSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPatchSize, err)
		}
		c.PatchSize = n
	}
	if v, ok := os.LookupEnv(EnvNumTopPatches); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNumTopPatches, err)
		}
		c.NumTopPatches = n
	}
	if v, ok := os.LookupEnv(EnvOutputFilename); ok {
		c.OutputFilename = v
	}
	if v, ok := os.LookupEnv(EnvExactCentroid); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvExactCentroid, err)
		}
		c.ExactCentroid = b
	}
	if v, ok := os.LookupEnv(EnvVertexOrder); ok {
		c.VertexOrder = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLineColor); ok {
		c.LineColor = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLineThickness); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLineThickness, err)
		}
		c.LineThickness = n
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.PatchSize < 1 {
		return fmt.Errorf("patch_size must be positive")
	}

	if c.NumTopPatches < 1 {
		return fmt.Errorf("num_top_patches must be positive")
	}

	if c.OutputFilename == "" {
		return fmt.Errorf("output_filename cannot be empty")
	}

	switch c.VertexOrder {
	case OrderRowMajor, OrderPolar:
	default:
		return fmt.Errorf("vertex_order must be %q or %q, got %q", OrderRowMajor, OrderPolar, c.VertexOrder)
	}

	if _, err := colorful.Hex(c.LineColor); err != nil {
		return fmt.Errorf("line_color %q is not a #RRGGBB colour", c.LineColor)
	}

	if c.LineThickness < 1 {
		return fmt.Errorf("line_thickness must be positive")
	}

	return nil
}

// CenterOffset returns the pixel offset from a patch's top-left corner to the
// point used as its center.
func (c *Config) CenterOffset() int {
	if c.ExactCentroid {
		return patch.CentroidOffset(c.PatchSize)
	}
	return patch.DefaultCenterOffset
}

// DebugEnabled reports whether BRIGHTQUAD_LOG_LEVEL asks for debug logging.
func DebugEnabled() bool {
	return strings.EqualFold(os.Getenv(EnvLogLevel), "debug")
}
