// Command inkpad demonstrates the signature ink engine: it synthesizes a
// handwritten-looking trace, feeds it through the capture pipeline, and
// exports the result.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/inkpad"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp creates the CLI application with all commands.
func newApp() *cli.App {
	return &cli.App{
		Name:    "inkpad",
		Usage:   "Variable-width ink engine for handwritten signatures",
		Version: Version,
		Commands: []*cli.Command{
			demoCmd(),
		},
	}
}

// demoCmd creates the demo command.
func demoCmd() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Render a synthetic signature and export it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "signature.png", Usage: "Output file (.png, .svg, or .pdf)"},
			&cli.StringFlag{Name: "tool", Aliases: []string{"t"}, Value: "pen", Usage: "Tool: pen|pencil|calligraphy"},
			&cli.StringFlag{Name: "color", Aliases: []string{"c"}, Value: "#16213e", Usage: "Ink color (hex)"},
			&cli.Float64Flag{Name: "min-width", Value: 1, Usage: "Minimum stroke width"},
			&cli.Float64Flag{Name: "max-width", Value: 4, Usage: "Maximum stroke width"},
			&cli.Float64Flag{Name: "streamline", Value: 0.5, Usage: "Stabilization strength [0,1]"},
			&cli.IntFlag{Name: "width", Value: 600, Usage: "Logical surface width"},
			&cli.IntFlag{Name: "height", Value: 240, Usage: "Logical surface height"},
			&cli.Float64Flag{Name: "pixel-ratio", Value: 2, Usage: "Device pixel ratio of the raster surface"},
			&cli.BoolFlag{Name: "replay", Usage: "Re-synthesize the capture through the replay engine before exporting"},
			&cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
		},
		Action: runDemo,
	}
}

func runDemo(c *cli.Context) error {
	if c.Bool("verbose") {
		inkpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tool, err := inkpad.ParseTool(c.String("tool"))
	if err != nil {
		return err
	}
	format, err := formatForPath(c.String("output"))
	if err != nil {
		return err
	}

	opts := inkpad.DrawingOptions{
		Color:      c.String("color"),
		MinWidth:   c.Float64("min-width"),
		MaxWidth:   c.Float64("max-width"),
		Streamline: c.Float64("streamline"),
		Tool:       tool,
	}

	width, height := c.Int("width"), c.Int("height")
	e := inkpad.NewEngine(width, height,
		inkpad.WithPixelRatio(c.Float64("pixel-ratio")),
		inkpad.WithDrawingOptions(opts),
	)

	for _, stroke := range signatureTrace(float64(width), float64(height)) {
		e.BeginStroke(stroke[0])
		for _, s := range stroke[1:] {
			e.ExtendStroke(s)
		}
		e.EndStroke()
	}

	if c.Bool("replay") {
		// Drive the stepper to completion by hand; the result must be
		// pixel-identical to the live capture.
		r := e.Replay()
		for r.Step() {
		}
	}

	f, err := os.Create(c.String("output"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := e.Export(f, format); err != nil {
		return err
	}
	fmt.Printf("exported %d strokes to %s\n", e.StrokeCount(), c.String("output"))
	return nil
}

// formatForPath maps an output file extension to an export format.
func formatForPath(path string) (inkpad.Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("output %q has no extension", path)
	}
	return inkpad.ParseFormat(ext)
}
