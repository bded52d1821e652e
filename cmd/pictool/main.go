package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ironsheep/pictool/internal/cli"
	"github.com/ironsheep/pictool/internal/imaging"
	"github.com/ironsheep/pictool/internal/plugin"
	"github.com/ironsheep/pictool/internal/runner"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr; stdout carries display dumps and MCP traffic
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("PICTOOL_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("pictool v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := runner.New(plugin.Default(), imaging.NewImageCache(), os.Stdout,
		runner.WithProgress(runner.NewProgress(os.Stderr)),
		runner.WithDebug(debug),
	)

	version := fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	code := cli.Execute(ctx, r, version, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
