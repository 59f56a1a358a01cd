package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/lasfield/internal/las"
	"github.com/banshee-data/lasfield/internal/monitoring"
)

// DefaultConfigPath is the path to the canonical transform defaults file.
const DefaultConfigPath = "config/transform.defaults.json"

// TransformConfig holds the per-axis scale and offset used to build a
// las.Vector. The JSON keys mirror the scale and offset fields of a LAS
// header so a header dump can be fed back in.
type TransformConfig struct {
	XScale  *float64 `json:"x_scale,omitempty"`
	XOffset *float64 `json:"x_offset,omitempty"`
	YScale  *float64 `json:"y_scale,omitempty"`
	YOffset *float64 `json:"y_offset,omitempty"`
	ZScale  *float64 `json:"z_scale,omitempty"`
	ZOffset *float64 `json:"z_offset,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }

// EmptyTransformConfig returns a TransformConfig with all fields set to nil.
func EmptyTransformConfig() *TransformConfig {
	return &TransformConfig{}
}

// FromVector returns a fully populated config for v.
func FromVector(v las.Vector) *TransformConfig {
	return &TransformConfig{
		XScale: ptrFloat64(v.X.Scale), XOffset: ptrFloat64(v.X.Offset),
		YScale: ptrFloat64(v.Y.Scale), YOffset: ptrFloat64(v.Y.Offset),
		ZScale: ptrFloat64(v.Z.Scale), ZOffset: ptrFloat64(v.Z.Offset),
	}
}

// LoadTransformConfig loads a TransformConfig from a JSON file.
// The file must have a .json extension and be under 1MB. Omitted fields
// fall back to the defaults in the Get* accessors.
func LoadTransformConfig(path string) (*TransformConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTransformConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	monitoring.Logf("config: loaded transforms from %s: %s", cleanPath, cfg)
	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents. Panics if the file cannot be loaded, intended
// for test setup.
func MustLoadDefaultConfig() *TransformConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadTransformConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate rejects transforms that cannot be inverted. A zero scale is
// accepted by las.Transform itself but every inverse through it fails, so
// it is caught here at load time.
func (c *TransformConfig) Validate() error {
	return c.Vector().Validate()
}

// Vector builds the per-axis transforms, filling defaults for unset fields.
func (c *TransformConfig) Vector() las.Vector {
	return las.Vector{
		X: las.Transform{Scale: c.GetXScale(), Offset: c.GetXOffset()},
		Y: las.Transform{Scale: c.GetYScale(), Offset: c.GetYOffset()},
		Z: las.Transform{Scale: c.GetZScale(), Offset: c.GetZOffset()},
	}
}

// Axis returns the transform for "x", "y" or "z".
func (c *TransformConfig) Axis(name string) (las.Transform, error) {
	v := c.Vector()
	switch name {
	case "x":
		return v.X, nil
	case "y":
		return v.Y, nil
	case "z":
		return v.Z, nil
	default:
		return las.Transform{}, fmt.Errorf("unknown axis %q, want x, y or z", name)
	}
}

func (c *TransformConfig) String() string {
	v := c.Vector()
	return fmt.Sprintf("x=%s y=%s z=%s", v.X, v.Y, v.Z)
}

func scaleOrDefault(p *float64) float64 {
	if p == nil {
		return las.DefaultScale
	}
	return *p
}

func offsetOrDefault(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// GetXScale returns the x_scale value or the default.
func (c *TransformConfig) GetXScale() float64 { return scaleOrDefault(c.XScale) }

// GetXOffset returns the x_offset value or the default.
func (c *TransformConfig) GetXOffset() float64 { return offsetOrDefault(c.XOffset) }

// GetYScale returns the y_scale value or the default.
func (c *TransformConfig) GetYScale() float64 { return scaleOrDefault(c.YScale) }

// GetYOffset returns the y_offset value or the default.
func (c *TransformConfig) GetYOffset() float64 { return offsetOrDefault(c.YOffset) }

// GetZScale returns the z_scale value or the default.
func (c *TransformConfig) GetZScale() float64 { return scaleOrDefault(c.ZScale) }

// GetZOffset returns the z_offset value or the default.
func (c *TransformConfig) GetZOffset() float64 { return offsetOrDefault(c.ZOffset) }
