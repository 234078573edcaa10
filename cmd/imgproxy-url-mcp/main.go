package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/imgproxy-url-mcp/internal/server"
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
			fmt.Printf("imgproxy-url-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("imgproxy-url-mcp - MCP server for imgproxy URL generation")
			fmt.Println()
			fmt.Println("Usage: imgproxy-url-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMGPROXY_KEY                     Signing key (hex-encoded)")
			fmt.Println("  IMGPROXY_SALT                    Signing salt (hex-encoded)")
			fmt.Println("  IMGPROXY_BASE_URL                Default base URL for built URLs")
			fmt.Println("  IMGPROXY_URL_MCP_LOG_LEVEL=debug Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := configFromEnv()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logLevel := os.Getenv("IMGPROXY_URL_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("imgproxy URL MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Signing configured: %t, base URL: %q", len(cfg.Key) > 0, cfg.BaseURL)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configFromEnv reads the imgproxy deployment settings. Key and salt arrive
// hex-encoded, imgproxy style, and must decode together or not at all.
func configFromEnv() (server.Config, error) {
	var cfg server.Config

	keyHex := os.Getenv("IMGPROXY_KEY")
	saltHex := os.Getenv("IMGPROXY_SALT")
	if (keyHex == "") != (saltHex == "") {
		return cfg, fmt.Errorf("IMGPROXY_KEY and IMGPROXY_SALT must be set together")
	}
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			return cfg, fmt.Errorf("IMGPROXY_KEY is not valid hex: %w", err)
		}
		salt, err := hex.DecodeString(saltHex)
		if err != nil {
			return cfg, fmt.Errorf("IMGPROXY_SALT is not valid hex: %w", err)
		}
		cfg.Key = key
		cfg.Salt = salt
	}

	cfg.BaseURL = os.Getenv("IMGPROXY_BASE_URL")
	return cfg, nil
}
