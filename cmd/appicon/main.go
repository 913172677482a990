// Command appicon renders the WMS Suite application icon.
//
// With no flags it reproduces the original asset build: a 1024x1024 PNG
// written to ~/Desktop/AppIcon_Fixed.png.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/wms-suite/appicon"
)

func main() {
	var (
		output  = flag.String("output", "", "output PNG path (default ~/Desktop/AppIcon_Fixed.png)")
		icoPath = flag.String("ico", "", "also write a multi-size Windows icon to this path")
		verbose = flag.Bool("v", false, "log drawing diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	path := *output
	if path == "" {
		var err error
		path, err = appicon.DefaultPath()
		if err != nil {
			log.Fatalf("Failed to resolve output path: %v", err)
		}
	}

	log.Printf("Rendering %dx%d icon...", appicon.Size, appicon.Size)
	img := appicon.Render()

	if err := appicon.WritePNG(path, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Created %s", path)

	if *icoPath != "" {
		if err := appicon.WriteICO(*icoPath, img); err != nil {
			log.Fatalf("Failed to write icon file: %v", err)
		}
		log.Printf("Created %s", *icoPath)
	}
}
