package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flag"

	"github.com/jaguago/jaguago/pkg/config"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/ioformat"
	"github.com/jaguago/jaguago/pkg/logx"
	"github.com/jaguago/jaguago/pkg/problems/bpp"
	"github.com/jaguago/jaguago/pkg/problems/spp"
	"github.com/jaguago/jaguago/pkg/render"
)

const version = "0.1.0"

var (
	configPath   = flag.String("config", "", "Path to YAML solver configuration file (required)")
	instancePath = flag.String("instance", "", "Path to a problem instance file (required)")
	outputDir    = flag.String("output", ".", "Output directory for generated files")
	format       = flag.String("format", "json", "Export format: json, yaml, svg, or all")
	seedFlag     = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("jaguago version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}
	if *instancePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -instance flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "yaml": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, yaml, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	level := logx.LevelInfo
	if *verbose {
		level = logx.LevelDebug
	}
	log := logx.New(os.Stderr, level)

	log.Debugf("loading configuration from %s", *configPath)
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *seedFlag != 0 {
		log.Debugf("overriding seed from %d to %d", cfg.Seed, *seedFlag)
		cfg.Seed = *seedFlag
	}
	log.Infof("using seed %d", cfg.Seed)

	log.Debugf("importing instance from %s", *instancePath)
	data, err := os.ReadFile(*instancePath)
	if err != nil {
		return fmt.Errorf("failed to read instance: %w", err)
	}

	inst, err := parseInstance(*instancePath, data)
	if err != nil {
		return fmt.Errorf("failed to parse instance: %w", err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	surrCfg := cfg.CDE.Surrogate.ToSurrogateConfig()
	start := time.Now()

	baseName := fmt.Sprintf("jaguago_%d", cfg.Seed)

	switch {
	case inst.Strip != nil:
		sppInst, centroids, err := ioformat.BuildSPPInstance(*inst, surrCfg)
		if err != nil {
			return fmt.Errorf("failed to build strip-packing instance: %w", err)
		}
		log.Infof("solving strip-packing instance with %d item kinds", len(sppInst.Items))
		sol, err := spp.Solve(ctx, *sppInst, *cfg, cfg.Seed)
		if err != nil {
			return fmt.Errorf("strip packing failed: %w", err)
		}
		elapsed := time.Since(start)
		log.Infof("solved in %v, density=%.3f, strip width=%.2f", elapsed, sol.Density, sol.StripWidth)

		wire := ioformat.ExportSPPSolution(sol, centroids, uint64(elapsed.Seconds()))
		return writeOutputs(baseName, wire, sol.Layout, sol.Container, log)

	case len(inst.Bins) > 0:
		bppInst, centroids, err := ioformat.BuildBPPInstance(*inst, surrCfg)
		if err != nil {
			return fmt.Errorf("failed to build bin-packing instance: %w", err)
		}
		log.Infof("solving bin-packing instance with %d bin types", len(bppInst.BinTypes))
		sol, err := bpp.Solve(ctx, *bppInst, *cfg, cfg.Seed)
		if err != nil {
			return fmt.Errorf("bin packing failed: %w", err)
		}
		elapsed := time.Since(start)
		log.Infof("solved in %v, density=%.3f, cost=%d, unplaced=%d", elapsed, sol.Density, sol.Cost, len(sol.UnplacedItemIDs))

		wire := ioformat.ExportBPPSolution(sol, centroids, uint64(elapsed.Seconds()))
		var snap *entities.LayoutSnapshot
		var container *entities.Container
		if len(sol.Layouts) > 0 {
			snap = &sol.Layouts[0]
			container = sol.Containers[0]
		}
		return writeOutputs(baseName, wire, derefSnapshot(snap), container, log)

	default:
		return fmt.Errorf("instance has neither a Strip nor an Objects section")
	}
}

func derefSnapshot(snap *entities.LayoutSnapshot) entities.LayoutSnapshot {
	if snap == nil {
		return entities.LayoutSnapshot{}
	}
	return *snap
}

func parseInstance(path string, data []byte) (*ioformat.Instance, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return ioformat.ParseInstanceYAML(data)
	}
	return ioformat.ParseInstanceJSON(data)
}

func writeOutputs(baseName string, sol ioformat.Solution, snap entities.LayoutSnapshot, container *entities.Container, log *logx.Logger) error {
	if *format == "json" || *format == "all" {
		data, err := ioformat.ExportSolutionJSON(sol)
		if err != nil {
			return fmt.Errorf("failed to export JSON: %w", err)
		}
		if err := writeFile(baseName+".json", data, log); err != nil {
			return err
		}
	}
	if *format == "yaml" || *format == "all" {
		data, err := ioformat.ExportSolutionYAML(sol)
		if err != nil {
			return fmt.Errorf("failed to export YAML: %w", err)
		}
		if err := writeFile(baseName+".yaml", data, log); err != nil {
			return err
		}
	}
	if (*format == "svg" || *format == "all") && container != nil {
		var buf strings.Builder
		opts := render.DefaultOptions()
		opts.Title = baseName
		if err := render.DrawLayout(&buf, container, snap, nil, opts); err != nil {
			return fmt.Errorf("failed to render SVG: %w", err)
		}
		if err := writeFile(baseName+".svg", []byte(buf.String()), log); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, data []byte, log *logx.Logger) error {
	path := filepath.Join(*outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: jaguago -config <config.yaml> -instance <instance.json> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'jaguago -help' for detailed help")
}

func printHelp() {
	fmt.Printf("jaguago version %s\n\n", version)
	fmt.Println("A command-line tool for irregular strip and bin packing.")
	fmt.Println("\nUsage:")
	fmt.Println("  jaguago -config <config.yaml> -instance <instance.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML solver configuration file")
	fmt.Println("  -instance string")
	fmt.Println("        Path to a problem instance file (.json or .yaml)")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, yaml, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  jaguago -config cfg.yaml -instance strip.json")
	fmt.Println("  jaguago -config cfg.yaml -instance bins.json -format all -output ./out")
}
