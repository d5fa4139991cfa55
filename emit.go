package nightsky

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	imageio "github.com/gogpu/nightsky/internal/image"
)

// Outputs names the files written by Emit.
type Outputs struct {
	PNG  string
	JPEG string
}

// OutputPaths returns where Emit writes for this configuration.
func (c Config) OutputPaths() Outputs {
	return Outputs{
		PNG:  filepath.Join(c.OutputDir, c.BaseName+".png"),
		JPEG: filepath.Join(c.OutputDir, c.BaseName+".jpg"),
	}
}

// Emit writes img as a best-compression PNG and a JPEG into the configured
// output directory, creating it with its parents if needed.
//
// The two files are independent; a failure writing either one is returned
// and nothing is retried.
func (r *Renderer) Emit(img image.Image) (Outputs, error) {
	out := r.cfg.OutputPaths()

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return Outputs{}, fmt.Errorf("nightsky: create output dir: %w", err)
	}
	if err := imageio.SavePNG(out.PNG, img); err != nil {
		return Outputs{}, fmt.Errorf("nightsky: write %s: %w", out.PNG, err)
	}
	Logger().Info("nightsky: wrote image", "path", out.PNG, "format", "png")

	if err := imageio.SaveJPEG(out.JPEG, img, r.cfg.JPEGQuality); err != nil {
		return Outputs{}, fmt.Errorf("nightsky: write %s: %w", out.JPEG, err)
	}
	Logger().Info("nightsky: wrote image", "path", out.JPEG, "format", "jpeg")

	return out, nil
}
