// Command wirepreview draws one wire of every shape kind into a PNG image.
package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"honnef.co/go/lines"
	"honnef.co/go/lines/pulse"
	"honnef.co/go/lines/raster"
)

type options struct {
	config  string
	out     string
	size    int
	scale   float64
	pulse   bool
	verbose bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "wirepreview",
		Short: "Render a preview of every wire shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
		SilenceUsage: true,
	}
	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "TOML file with drawing defaults")
	f.StringVarP(&opts.out, "out", "o", "wires.png", "output file")
	f.IntVar(&opts.size, "size", 800, "width and height of the image in pixels")
	f.Float64Var(&opts.scale, "scale", 50, "pixels per world unit")
	f.BoolVar(&opts.pulse, "pulse", false, "brighten colors as if pulsing")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log geometry updates")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.verbose {
		lines.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if opts.size <= 0 || opts.scale <= 0 {
		return fmt.Errorf("size and scale must be positive")
	}

	cfg := lines.DefaultConfig()
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return err
		}
		cfg, err = lines.LoadConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", opts.config, err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.size, opts.size))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	half := float64(opts.size) / 2
	canvas := raster.NewCanvas(img, opts.scale, lines.V2(half, half))

	var wireOpts []lines.Option
	if opts.pulse {
		wireOpts = append(wireOpts, lines.WithColorFilter(pulse.Filter(pulse.DefaultPeriod, time.Now)))
	}
	reg, err := lines.NewRegistry(canvas, cfg, wireOpts...)
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := drawScene(reg); err != nil {
		return err
	}
	canvas.Render()

	out, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d wires to %s\n", canvas.Len(), opts.out)
	return nil
}

// drawScene lays the shapes out on a grid three units apart.
func drawScene(reg *lines.Registry) error {
	cell := func(col, row float64) lines.Vec3 { return lines.V3(col*3, row*3, 0) }
	steps := []struct {
		name string
		draw func(w *lines.Wire) (*lines.Wire, error)
	}{
		{"line", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(-2, 2)
			return w.Line([]lines.Vec3{c.Add(lines.V3(-1, -1, 0)), c.Add(lines.V3(0, 1, 0)), c.Add(lines.V3(1, -1, 0))},
				lines.Style{Color: colornames.White})
		}},
		{"arrow", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(-1, 2)
			return w.Arrow(c.Add(lines.V3(-1, -1, 0)), c.Add(lines.V3(1, 1, 0)), lines.Style{Color: colornames.Orange})
		}},
		{"double arrow", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(0, 2)
			return w.Segment(c.Add(lines.V3(-1, 0, 0)), c.Add(lines.V3(1, 0, 0)),
				lines.Style{Color: colornames.Gold, End: lines.ArrowBothEnds})
		}},
		{"bezier", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(1, 2)
			return w.Bezier(c.Add(lines.V3(-1, -1, 0)), c.Add(lines.V3(-1, 1, 0)), c.Add(lines.V3(1, -1, 0)), c.Add(lines.V3(1, 1, 0)),
				lines.Style{Color: colornames.Lime, End: lines.Arrow})
		}},
		{"tapered", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(2, 2)
			pts := []lines.Vec3{c.Add(lines.V3(-1, 0, 0)), c, c.Add(lines.V3(1, 0, 0))}
			return w.TaperedLine(pts, []float64{0.05, 0.4, 0.05}, lines.Style{Color: colornames.Pink})
		}},
		{"rod", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(-2, 1)
			return w.RodSegment(c.Add(lines.V3(-1, 1, 0)), c.Add(lines.V3(1, -1, 0)),
				lines.Style{Color: colornames.Cyan, StartWidth: 0.3, EndWidth: 0.05})
		}},
		{"arc", func(w *lines.Wire) (*lines.Wire, error) {
			return w.Arc(270, lines.Back, lines.V3(1, 0, 0), cell(-1, 1), lines.Style{Color: colornames.Yellow, End: lines.Arrow})
		}},
		{"circle", func(w *lines.Wire) (*lines.Wire, error) {
			return w.Circle(cell(0, 1), lines.Back, 1, lines.Style{Color: colornames.Deepskyblue})
		}},
		{"arc between", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(1, 1)
			return w.ArcBetween(c.Add(lines.V3(-1, 0, 0)), c.Add(lines.V3(1, 0, 0)), 120, lines.Up,
				lines.Style{Color: colornames.Violet, End: lines.Arrow})
		}},
		{"orbital", func(w *lines.Wire) (*lines.Wire, error) {
			c := cell(2, 1)
			return w.Orbital(c, c.Add(lines.V3(1, 0, 0)), c.Add(lines.V3(0, 0.5, 0)),
				lines.Style{Color: colornames.Salmon, End: lines.Arrow})
		}},
		{"spiral sphere", func(w *lines.Wire) (*lines.Wire, error) {
			return w.SpiralSphere(cell(-2, 0), 1, lines.AngleAxis(30, lines.Right), lines.Style{Color: colornames.Aquamarine, StartWidth: 0.03})
		}},
		{"box", func(w *lines.Wire) (*lines.Wire, error) {
			rot := lines.AngleAxis(30, lines.Up).Mul(lines.AngleAxis(20, lines.Right))
			return w.Box(cell(-1, 0), lines.V3(1.5, 1.5, 1.5), rot, lines.Style{Color: colornames.Tomato, StartWidth: 0.05})
		}},
		{"rotation", func(w *lines.Wire) (*lines.Wire, error) {
			q := lines.AngleAxis(120, lines.V3(1, 1, 1).Normalize())
			return w.Rotation(q, cell(0, 0), nil, lines.Identity, lines.Style{Color: colornames.Lightgreen, StartWidth: 0.05})
		}},
		{"cartesian plane", func(w *lines.Wire) (*lines.Wire, error) {
			return w.CartesianPlane(cell(1, 0), lines.Identity, 1, 0.25, lines.Style{Color: colornames.Silver, StartWidth: 0.08})
		}},
		{"rectangle", func(w *lines.Wire) (*lines.Wire, error) {
			return w.Rectangle(cell(2, 0), lines.V2(1, 0.6), lines.Vec2{}, lines.AngleAxis(15, lines.Forward),
				lines.Style{Color: colornames.Khaki, StartWidth: 0.06})
		}},
	}
	for _, step := range steps {
		w, err := reg.Make(step.name)
		if err != nil {
			return err
		}
		if _, err := step.draw(w); err != nil {
			return fmt.Errorf("drawing %s: %w", step.name, err)
		}
	}
	return nil
}
