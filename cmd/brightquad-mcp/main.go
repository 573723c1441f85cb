package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/brightquad/internal/config"
	"github.com/ironsheep/brightquad/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("brightquad-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("brightquad-mcp - MCP server for brightest-patch analysis")
			fmt.Println()
			fmt.Println("Usage: brightquad-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from .env):")
			fmt.Println("  BRIGHTQUAD_CONFIG=path.json      JSON configuration file")
			fmt.Println("  BRIGHTQUAD_PATCH_SIZE=5          Default patch size")
			fmt.Println("  BRIGHTQUAD_NUM_TOP_PATCHES=4     Default number of vertices")
			fmt.Println("  BRIGHTQUAD_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if config.DebugEnabled() {
		log.Printf("brightquad MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: patch_size=%d num_top_patches=%d vertex_order=%s",
			cfg.PatchSize, cfg.NumTopPatches, cfg.VertexOrder)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
