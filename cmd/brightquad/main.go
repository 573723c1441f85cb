package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/brightquad/internal/analysis"
	"github.com/ironsheep/brightquad/internal/config"
	"github.com/ironsheep/brightquad/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("brightquad - outline the brightest patches of an image")
	fmt.Println()
	fmt.Println("Usage: brightquad <image>")
	fmt.Println("       brightquad --write-config <file.json>")
	fmt.Println()
	fmt.Println("Finds the brightest square patches of the image, prints the area of the")
	fmt.Println("polygon joining their centers and writes the image with the polygon drawn")
	fmt.Println("on it to the output file (updated_image.png by default).")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println("  --write-config   Write the effective configuration as JSON, for use")
	fmt.Println("                   with BRIGHTQUAD_CONFIG")
	fmt.Println()
	fmt.Println("Environment variables (also read from .env):")
	fmt.Println("  BRIGHTQUAD_CONFIG=path.json          JSON configuration file")
	fmt.Println("  BRIGHTQUAD_PATCH_SIZE=5              Patch side in pixels")
	fmt.Println("  BRIGHTQUAD_NUM_TOP_PATCHES=4         Number of patches joined")
	fmt.Println("  BRIGHTQUAD_OUTPUT=updated_image.png  Output file")
	fmt.Println("  BRIGHTQUAD_EXACT_CENTROID=false      Use patch_size/2 as the center offset")
	fmt.Println("  BRIGHTQUAD_VERTEX_ORDER=row-major    row-major or polar")
	fmt.Println("  BRIGHTQUAD_LINE_COLOR=#FF0000        Outline colour")
	fmt.Println("  BRIGHTQUAD_LINE_THICKNESS=2          Outline width in pixels")
	fmt.Println("  BRIGHTQUAD_LOG_LEVEL=debug           Enable debug logging")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("brightquad %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		usage()
		return
	case "--write-config":
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		if err := writeConfig(os.Args[2]); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	if len(os.Args) != 2 {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// writeConfig saves the configuration run would use, so it can be edited
// and passed back through BRIGHTQUAD_CONFIG.
func writeConfig(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := cfg.SaveToFile(path); err != nil {
		return err
	}
	fmt.Printf("written: %s\n", path)
	return nil
}

func run(inputPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	debug := config.DebugEnabled()

	img, err := imaging.NewImageCache().Load(inputPath)
	if err != nil {
		return err
	}
	gray := imaging.GrayMatrix(img)
	if debug {
		rows, cols := gray.Dims()
		log.Printf("Loaded %s: %dx%d, patch size %d", inputPath, cols, rows, cfg.PatchSize)
	}

	res, err := analysis.Run(gray, cfg)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("Grid %dx%d, brightest patches %v", res.GridRows, res.GridCols, res.Indices)
	}

	annotated, err := analysis.Annotate(img, res, cfg)
	if err != nil {
		return err
	}
	if err := imaging.Save(annotated, cfg.OutputFilename); err != nil {
		return err
	}

	for i, v := range res.Vertices {
		fmt.Printf("vertex %d: x=%d y=%d\n", i, v.X, v.Y)
	}
	fmt.Printf("area: %g square pixels\n", res.Area)
	fmt.Printf("perimeter: %.2f pixels\n", res.Perimeter)
	fmt.Printf("written: %s\n", cfg.OutputFilename)
	return nil
}
