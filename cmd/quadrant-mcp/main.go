package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ironsheep/quadrant-tools-mcp/internal/server"
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
			fmt.Printf("quadrant-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("quadrant-tools-mcp - MCP server for quadrant classification")
			fmt.Println()
			fmt.Println("Usage: quadrant-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  QUADRANT_MCP_LOG_LEVEL=debug      Enable debug logging")
			fmt.Println("  QUADRANT_MCP_OUTPUT_DIR=<dir>     Directory for saved plots")
			fmt.Println("  QUADRANT_MCP_PLOT_SIZE=400        Default plot size in pixels")
			fmt.Println("  QUADRANT_MCP_SHADE_COLOR=#E24A33  Shade color for selected quadrants")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Environment variables already set take precedence over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to read .env: %v", err)
	}

	cfg := server.ConfigFromEnv()
	if cfg.Debug {
		log.Printf("Quadrant MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Plots are saved to %s", cfg.OutputDir)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
