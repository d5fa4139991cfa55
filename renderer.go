package nightsky

import (
	"image"
	"time"
)

// Renderer runs the night sky pipeline for one configuration.
//
// A Renderer holds no per-render state: every call to Compose or Render
// starts a fresh canvas and a fresh random stream from the configured seed,
// so repeated calls return identical pixels.
type Renderer struct {
	cfg     Config
	palette *Palette
	passes  []Pass
}

// New creates a renderer from DefaultConfig adjusted by opts.
// It returns an error wrapping ErrInvalidConfig if the result is unusable.
func New(opts ...Option) (*Renderer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	passes := cfg.Passes
	if passes == nil {
		passes = DefaultPasses()
	}

	return &Renderer{
		cfg:     cfg,
		palette: DefaultPalette(),
		passes:  passes,
	}, nil
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Palette returns the palette the passes draw with.
func (r *Renderer) Palette() *Palette {
	return r.palette
}

// Result holds the intermediate and final images of a render.
type Result struct {
	// Canvas is the composed working-resolution canvas.
	Canvas *Canvas

	// Upscaled is Canvas magnified to the output size, before the vignette.
	Upscaled *image.RGBA

	// Mask is the vignette opacity mask.
	Mask *Mask

	// Image is the final opaque output.
	Image *image.RGBA
}

// Compose runs the drawing passes in order on a new working canvas.
func (r *Renderer) Compose() *Canvas {
	log := Logger()
	c := NewCanvas(r.cfg.LowWidth(), r.cfg.LowHeight())
	rng := NewRand(r.cfg.Seed)

	for _, p := range r.passes {
		start := time.Now()
		p.Draw(c, r.palette, rng)
		log.Debug("nightsky: pass done", "pass", p.Name, "elapsed", time.Since(start))
	}
	return c
}

// Render composes the canvas, upsamples it and applies the vignette.
func (r *Renderer) Render() *Result {
	log := Logger()

	c := r.Compose()

	start := time.Now()
	up := Upsample(c.ToImage(), r.cfg.Scale)
	log.Debug("nightsky: upsampled",
		"from", c.Bounds().Size(), "to", up.Bounds().Size(), "elapsed", time.Since(start))

	start = time.Now()
	mask := VignetteMask(up.Bounds().Dx(), up.Bounds().Dy(), r.cfg.VignetteStep)
	final := ApplyVignette(up, mask)
	log.Debug("nightsky: vignette applied", "step", r.cfg.VignetteStep, "elapsed", time.Since(start))

	return &Result{
		Canvas:   c,
		Upscaled: up,
		Mask:     mask,
		Image:    final,
	}
}
