package main

import (
	"flag"
	"fmt"
	"gridmap/config"
	"gridmap/core"
	"gridmap/export"
	"gridmap/importer"
	"gridmap/render"
	"gridmap/validation"
	"io"
	"log"
	"os"
)

func main() {
	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Define command line flags, defaulting to the environment
	var (
		server   = flag.String("server", cfg.ServerURL, "Search service base URL")
		cellSize = flag.Int("cell", cfg.CellSize, "Cell size in terminal pixels (a character is 1x2 pixels)")
		cost     = flag.Int("cost", cfg.Cost, "Initial cost painted in weighted mode (1-9)")
		lang     = flag.String("lang", cfg.Language, "Message language: en, pt_BR (default: from $LANG)")
		logFile  = flag.String("log", cfg.LogFile, "Write logs to this file")
		timeout  = flag.Duration("timeout", cfg.Timeout, "Search service request timeout")
		palette  = flag.String("palette", cfg.Palette, "Colour palette: light, dark")
		validate = flag.Bool("validate", false, "Check that the map file has one start and one goal")
		help     = flag.Bool("help", false, "Show help")

		// Export flags
		format     = flag.String("format", "", "Render the map file non-interactively: text, png, ansi")
		outputFile = flag.String("o", "", "Output file (default: stdout)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [map.txt]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A grid map editor for a path-finding search service.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                             # Edit a new map\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s maze.txt                    # Edit a map file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format png -o maze.png maze.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format ansi maze.txt        # Print the map in colour\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -validate maze.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %s %s %s %s\n", config.EnvServer, config.EnvCellSize, config.EnvCost, config.EnvLang)
		fmt.Fprintf(os.Stderr, "  %s %s %s\n", config.EnvLog, config.EnvTimeout, config.EnvPalette)
		fmt.Fprintf(os.Stderr, "\nInteractive Mode:\n")
		fmt.Fprintf(os.Stderr, "  click / drag        toggle / paint walls\n")
		fmt.Fprintf(os.Stderr, "  s, g, c             latch start, goal or weighted mode (ESC releases)\n")
		fmt.Fprintf(os.Stderr, "  1-9                 weighted cost\n")
		fmt.Fprintf(os.Stderr, "  Enter / space       search\n")
		fmt.Fprintf(os.Stderr, "  a, h                next algorithm, next heuristic\n")
		fmt.Fprintf(os.Stderr, "  p, n, r             next preset, new map, reload presets\n")
		fmt.Fprintf(os.Stderr, "  +, -                cell size\n")
		fmt.Fprintf(os.Stderr, "  :save <name>        save the map on the service\n")
		fmt.Fprintf(os.Stderr, "  :export <fmt> <file>  export to text, png or ansi\n")
		fmt.Fprintf(os.Stderr, "  :q                  quit\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg.ServerURL = *server
	cfg.CellSize = *cellSize
	cfg.Cost = *cost
	cfg.Language = *lang
	cfg.LogFile = *logFile
	cfg.Timeout = *timeout
	cfg.Palette = *palette
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get filename if provided
	var filename string
	if args := flag.Args(); len(args) > 0 {
		filename = args[0]
	}

	if *validate {
		if filename == "" {
			fmt.Fprintf(os.Stderr, "Error: -validate needs a map file\n\n")
			flag.Usage()
			os.Exit(1)
		}
		if err := validateMapFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%s: ok\n", filename)
		if *format == "" {
			os.Exit(0)
		}
	}

	if *format != "" {
		if filename == "" {
			fmt.Fprintf(os.Stderr, "Error: Please provide a map file to render\n\n")
			flag.Usage()
			os.Exit(1)
		}
		pal, _ := render.PaletteByName(cfg.Palette)
		if err := renderMapFile(filename, *format, *outputFile, pal); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := runInteractive(cfg, filename, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLog returns a logger writing to path, or discarding when path is "".
func openLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return log.New(f, "gridmap: ", log.LstdFlags), f.Close, nil
}

// validateMapFile parses a map file and checks its endpoints.
func validateMapFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	g, err := importer.FromReader(f)
	if err != nil {
		return err
	}
	return validation.Endpoints(g)
}

// renderMapFile writes a map file in the given export format to output,
// or to stdout when output is "".
func renderMapFile(filename, format, output string, pal render.Palette) error {
	exportFormat, err := export.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, export.GetAvailableFormats())
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	g, err := importer.FromText(string(data))
	if err != nil {
		return err
	}

	renderer := render.NewRenderer()
	renderer.SetPalette(pal)
	exporter, err := export.NewExporterWith(exportFormat, renderer)
	if err != nil {
		return err
	}

	// Image formats get readable cells; the text format ignores the size
	scene := render.Scene{Grid: g, Overlay: core.Overlay{}, CellSize: 16}
	out, err := exporter.Export(scene)
	if err != nil {
		return fmt.Errorf("exporting map: %w", err)
	}

	if output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Successfully exported to %s\n", output)
	return nil
}
