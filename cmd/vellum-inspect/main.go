// Package main provides vellum-inspect, a developer tool that builds a
// demo component tree, runs layout at a configured viewport, and prints
// the computed rect tree.
//
// Usage:
//
//	vellum-inspect [options] [demo]
//
// Examples:
//
//	vellum-inspect                        Lay out the dashboard demo at 800x600
//	vellum-inspect table                  Lay out the table demo
//	vellum-inspect -config inspect.yaml   Read viewport and tracing from YAML
//	vellum-inspect -trace tabs            Print distribution decisions too
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vellum-ui/vellum/pkg/layout"
	"github.com/vellum-ui/vellum/pkg/trace"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		width      = flag.Float64("width", 0, "viewport width (overrides config)")
		height     = flag.Float64("height", 0, "viewport height (overrides config)")
		traceOn    = flag.Bool("trace", false, "log layout decisions")
		noColor    = flag.Bool("no-color", false, "disable colored output")
	)
	flag.Parse()

	if err := run(*configPath, *width, *height, *traceOn, *noColor, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, width, height float64, traceOn, noColor bool, demo string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if width > 0 {
		cfg.Viewport.Width = width
	}
	if height > 0 {
		cfg.Viewport.Height = height
	}
	if traceOn {
		cfg.Trace = true
	}
	if demo == "" {
		demo = cfg.Demo
	}

	root, err := buildDemo(demo)
	if err != nil {
		return err
	}

	opts := []layout.Option{}
	if cfg.Trace {
		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("trace logger: %w", err)
		}
		defer log.Sync()
		opts = append(opts, layout.WithTracer(trace.NewZap(log)))
	}

	engine := layout.NewEngine(opts...)
	viewport := layout.Tight(cfg.Viewport.Width, cfg.Viewport.Height)
	if err := engine.Layout(root, viewport); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	printTree(os.Stdout, root, noColor)
	return nil
}
