// Package nightsky renders a retro pixel-art night sky.
//
// # Overview
//
// The image is composed on a small working canvas by a fixed list of drawing
// passes, then magnified with nearest-neighbor sampling and darkened toward
// the edges by a radial vignette:
//
//	gradient -> starfield -> moon -> galaxy -> silhouette -> grid
//	    -> upsample -> vignette -> PNG + JPEG
//
// # Quick Start
//
//	r, err := nightsky.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := r.Render()
//	out, err := r.Emit(res.Image)
//
// # Determinism
//
// All randomness comes from one stream seeded by Config.Seed and handed to
// every pass in turn. The passes draw from it in a fixed order, so the same
// seed always yields the same canvas. Reordering or replacing passes changes
// the image even with the same seed.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Shape corners are inclusive pixel coordinates
package nightsky

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
