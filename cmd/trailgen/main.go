// Command trailgen runs the trail simulation without a window, printing
// per-tick mesh statistics and optionally exporting the final mesh.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/trailkit/internal/config"
	"github.com/Faultbox/trailkit/internal/logger"
	"github.com/Faultbox/trailkit/internal/sim"
	"github.com/Faultbox/trailkit/internal/term"
	"github.com/Faultbox/trailkit/pkg/formats"
)

var (
	flagOBJ         = flag.String("obj", "", "Write the final mesh as Wavefront OBJ to this path")
	flagEvery       = flag.Int("every", 1, "Print stats every N ticks (0 prints only the last tick)")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config as YAML to this path and exit")
	flagWorld       = flag.Bool("world", true, "Export the mesh in world space instead of emitter space")
	flagTUI         = flag.Bool("tui", false, "Show a live top-down preview in the terminal")
	flagExtent      = flag.Float64("extent", 0, "Half-size of the terminal preview in world units (0 fits the emitter path)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagWriteConfig != "" {
		if err := cfg.SaveTo(*flagWriteConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing config: %v\n", err)
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", *flagWriteConfig))
		return
	}

	if *flagTUI {
		if err := runTUI(cfg); err != nil {
			logger.Error("preview failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("trailgen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	d, err := sim.NewDriver(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "tick\trings\ttriangles\tline\tmin\tmax\t")

	var last sim.Frame
	err = d.Run(cfg.Sim.Ticks, func(f sim.Frame) error {
		last = f
		if *flagEvery > 0 && f.Tick%*flagEvery == 0 {
			printStats(tw, f.Stats())
		}
		return nil
	})
	if err != nil {
		return err
	}
	if *flagEvery <= 0 || last.Tick%*flagEvery != 0 {
		printStats(tw, last.Stats())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if *flagOBJ == "" {
		return nil
	}
	mesh := last.Mesh
	if *flagWorld {
		mesh = mesh.Translate(last.Emitter)
	}
	obj := formats.OBJFromMesh("trail", mesh)
	if err := obj.WriteFile(*flagOBJ); err != nil {
		return err
	}
	logger.Info("mesh exported",
		zap.String("path", *flagOBJ),
		zap.Int("vertices", obj.VertexCount()),
		zap.Int("faces", obj.TriangleCount()),
	)
	return nil
}

// runTUI plays the simulation in the terminal. Sim.Ticks bounds the run; 0 runs until quit.
func runTUI(cfg *config.Config) error {
	d, err := sim.NewDriver(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	extent := float32(*flagExtent)
	if extent <= 0 {
		extent = previewExtent(cfg)
	}
	s := term.NewSession(screen, d, extent)
	s.Ticks = cfg.Sim.Ticks
	s.Run()

	logger.Info("preview closed", zap.Int("tick", s.Last().Tick))
	return nil
}

// previewExtent frames the emitter path with room for the tube radius.
func previewExtent(cfg *config.Config) float32 {
	return cfg.Emitter.Radius*1.25 + cfg.Tube.MaxRadius + 1
}

func printStats(w io.Writer, s sim.Stats) {
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t(%.2f, %.2f, %.2f)\t(%.2f, %.2f, %.2f)\t\n",
		s.Tick, s.Rings, s.Triangles, s.LineLen,
		s.Bounds.Min.X, s.Bounds.Min.Y, s.Bounds.Min.Z,
		s.Bounds.Max.X, s.Bounds.Max.Y, s.Bounds.Max.Z,
	)
}
