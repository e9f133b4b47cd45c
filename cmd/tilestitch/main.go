package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tilestitch/tilestitch/internal/cli"
	"github.com/tilestitch/tilestitch/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("tilestitch %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	// Diagnostics go to stderr; stdout stays clean for scripting.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if os.Getenv(config.EnvLogLevel) == "debug" {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Printf("tilestitch v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := config.DefaultConfig()
	cfg.ApplyEnv()

	err := config.ParseFlags(cfg, os.Args[1:], os.Stderr)
	if err == nil {
		err = cli.Run(cfg)
	}
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Printf("error: %v", err)
	}
	os.Exit(cli.ExitCode(err))
}
