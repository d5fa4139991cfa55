// Command nightsky renders the retro pixel night sky wallpaper.
//
// It takes no flags: size, seed and output location are compiled in.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/nightsky"
)

func main() {
	nightsky.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	r, err := nightsky.New()
	if err != nil {
		log.Fatalf("Failed to configure: %v", err)
	}

	res := r.Render()

	out, err := r.Emit(res.Image)
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	fmt.Printf("Wrote: %s\n", out.PNG)
	fmt.Printf("Wrote: %s\n", out.JPEG)
}
