package nightsky

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New when an option produces an unusable
// configuration.
var ErrInvalidConfig = errors.New("nightsky: invalid config")

// Default configuration values.
const (
	DefaultWidth        = 3840 // 4K UHD
	DefaultHeight       = 2160
	DefaultScale        = 4
	DefaultSeed         = 42
	DefaultVignetteStep = 60
	DefaultJPEGQuality  = 92
	DefaultOutputDir    = "output"
	DefaultBaseName     = "nightsky_retro_pixel"
)

// Config holds the compiled-in parameters of a render.
//
// Width and Height are the final output size; the passes draw on a canvas of
// Width/Scale by Height/Scale which is then magnified by Scale.
type Config struct {
	Width        int
	Height       int
	Scale        int
	Seed         uint64
	VignetteStep int
	JPEGQuality  int
	OutputDir    string
	BaseName     string

	// Passes overrides the drawing passes; nil means DefaultPasses.
	Passes []Pass
}

// DefaultConfig returns the configuration of the published image.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Scale:        DefaultScale,
		Seed:         DefaultSeed,
		VignetteStep: DefaultVignetteStep,
		JPEGQuality:  DefaultJPEGQuality,
		OutputDir:    DefaultOutputDir,
		BaseName:     DefaultBaseName,
	}
}

// LowWidth returns the working canvas width.
func (c Config) LowWidth() int { return c.Width / c.Scale }

// LowHeight returns the working canvas height.
func (c Config) LowHeight() int { return c.Height / c.Scale }

// Validate reports whether the configuration can be rendered.
func (c Config) Validate() error {
	switch {
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d < 1", ErrInvalidConfig, c.Scale)
	case c.Width < c.Scale || c.Height < c.Scale:
		return fmt.Errorf("%w: size %dx%d smaller than scale %d", ErrInvalidConfig, c.Width, c.Height, c.Scale)
	case c.Width%c.Scale != 0 || c.Height%c.Scale != 0:
		return fmt.Errorf("%w: size %dx%d not divisible by scale %d", ErrInvalidConfig, c.Width, c.Height, c.Scale)
	case c.VignetteStep < 1:
		return fmt.Errorf("%w: vignette step %d < 1", ErrInvalidConfig, c.VignetteStep)
	case c.JPEGQuality < 1 || c.JPEGQuality > 100:
		return fmt.Errorf("%w: jpeg quality %d outside 1..100", ErrInvalidConfig, c.JPEGQuality)
	case c.BaseName == "":
		return fmt.Errorf("%w: empty base name", ErrInvalidConfig)
	}
	return nil
}

// Option configures a Renderer during creation.
//
// Example:
//
//	// The published 4K image
//	r, err := nightsky.New()
//
//	// A small preview with another seed
//	r, err := nightsky.New(nightsky.WithSize(960, 540), nightsky.WithSeed(7))
type Option func(*Config)

// WithSize sets the final output size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithScale sets the pixelation factor between output and working canvas.
func WithScale(scale int) Option {
	return func(c *Config) {
		c.Scale = scale
	}
}

// WithSeed sets the seed of the shared random stream.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithVignetteStep sets the radius decrement between vignette rings.
func WithVignetteStep(step int) Option {
	return func(c *Config) {
		c.VignetteStep = step
	}
}

// WithJPEGQuality sets the JPEG quality (1-100).
func WithJPEGQuality(q int) Option {
	return func(c *Config) {
		c.JPEGQuality = q
	}
}

// WithOutputDir sets the directory Emit writes into.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

// WithPasses replaces the drawing passes. Passes run in slice order.
func WithPasses(passes ...Pass) Option {
	return func(c *Config) {
		c.Passes = passes
	}
}
