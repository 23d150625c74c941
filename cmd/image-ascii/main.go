package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ironsheep/image-ascii/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "image-ascii"
	parser.LongDescription = "Render an image as text by mapping pixel brightness onto a density ramp.\n\n" +
		"Environment variables:\n" +
		"  IMAGE_ASCII_LOG_LEVEL=debug    Enable debug logging"

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	if opts.Version {
		fmt.Printf("image-ascii %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Configure logging to stderr (stdout carries the art or the MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("IMAGE_ASCII_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("image-ascii v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if opts.Serve {
		server.Debug = debug
		srv := server.New(Version)
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	isSet := func(long string) bool {
		o := parser.FindOptionByLongName(long)
		return o != nil && o.IsSet()
	}
	if err := run(&opts, isSet, os.Stdout, debug); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
}
