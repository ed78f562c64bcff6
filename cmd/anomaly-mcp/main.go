package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/hue-anomaly-mcp/internal/anomaly"
	"github.com/ironsheep/hue-anomaly-mcp/internal/config"
	"github.com/ironsheep/hue-anomaly-mcp/internal/imaging"
	"github.com/ironsheep/hue-anomaly-mcp/internal/server"
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
			fmt.Printf("hue-anomaly-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage(os.Stdout)
			return
		case "scan":
			configureLogging()
			if err := runScan(os.Args[2:], os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "scan: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	configureLogging()

	cfg, err := config.Load(os.Getenv("ANOMALY_MCP_CONFIG"))
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Hue Anomaly MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Detector options: %+v", cfg.Detector.Options())
	}

	srv := server.NewWithOptions(cfg.Detector.Options())
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configureLogging sends logs to stderr; stdout is reserved for MCP protocol
// and scan output.
func configureLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hue-anomaly-mcp - MCP server for hue anomaly inspection")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hue-anomaly-mcp [options]")
	fmt.Fprintln(w, "  hue-anomaly-mcp scan [--config file.yaml] [--width N] [--height N] [--overlay out.png] <image> <hue>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hues: yellow, red, green, blue")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  ANOMALY_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Fprintln(w, "  ANOMALY_MCP_CONFIG=file.yaml   Load settings from a YAML file")
	fmt.Fprintln(w, "  ANOMALY_MCP_DETECTOR_MARGIN, ANOMALY_MCP_DETECTOR_MIN_DISTANCE,")
	fmt.Fprintln(w, "  ANOMALY_MCP_DETECTOR_BRIGHTNESS_CUTOFF, ANOMALY_MCP_DETECTOR_BRIGHT_THRESHOLD,")
	fmt.Fprintln(w, "  ANOMALY_MCP_DETECTOR_DARK_THRESHOLD    Override detector settings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command the server communicates via MCP protocol over stdin/stdout.")
}

// runScan performs a one-shot detection and prints the numbered coordinate
// list, optionally writing a marker overlay.
func runScan(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	width := fs.Int("width", 0, "render width in pixels (0 = natural)")
	height := fs.Int("height", 0, "render height in pixels (0 = natural)")
	overlay := fs.String("overlay", "", "write a PNG with every anomaly circled")
	configPath := fs.String("config", os.Getenv("ANOMALY_MCP_CONFIG"), "YAML settings file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected <image> <hue>, got %d arguments", fs.NArg())
	}

	path := fs.Arg(0)
	hue, err := anomaly.ParseHue(fs.Arg(1))
	if err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	frame, err := imaging.NewImageCache().Frame(path, *width, *height)
	if err != nil {
		return err
	}
	res := anomaly.NewDetector(cfg.Detector.Options()).Detect(frame, hue)

	fmt.Fprintf(out, "%s anomalies in %s (%dx%d)\n", hue, path, res.Width, res.Height)
	fmt.Fprintf(out, "background %s brightness %.2f threshold %.0f\n", res.Background, res.Brightness, res.Threshold)
	for i, c := range res.Coordinates() {
		fmt.Fprintf(out, "%4d  %s\n", i, c)
	}
	fmt.Fprintf(out, "%d found\n", res.Len())

	if *overlay != "" {
		markers := make([]imaging.Marker, 0, res.Len())
		for _, rec := range res.Records {
			markers = append(markers, imaging.DetectionMarker(rec.X, rec.Y))
		}
		if err := imaging.SaveOverlay(*overlay, frame.Image(), markers); err != nil {
			return err
		}
		fmt.Fprintf(out, "overlay written to %s\n", *overlay)
	}
	return nil
}
