package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"cylinders/internal/revolve/catalog"
	"cylinders/internal/revolve/layout"
	"cylinders/internal/revolve/models"
	"cylinders/internal/revolve/projector"

	"github.com/spf13/cobra"
)

// ============================================================
// CLI
// ============================================================

type flags struct {
	angle            float64
	catalogPath      string
	out              string
	only             []string
	padding          float64
	textSize         float64
	sealTolerance    float64
	degenerateMargin float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "cylinders",
		Short: "Render stacked-frustum objects as a tilted SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), f)
		},
		SilenceUsage: true,
	}

	fs := cmd.Flags()
	fs.Float64VarP(&f.angle, "angle", "a", 0, "tilt angle in radians, [0, pi/2)")
	fs.StringVarP(&f.out, "out", "o", "", "output file (stdout if empty)")
	fs.StringSliceVar(&f.only, "only", nil, "render only the named objects")
	fs.Float64Var(&f.padding, "padding", 20, "padding between objects")
	fs.Float64Var(&f.textSize, "text-size", 10, "label font size")
	fs.Float64Var(&f.sealTolerance, "seal-tolerance", 0, "radius step that triggers a sealing cap")
	fs.Float64Var(&f.degenerateMargin, "degenerate-margin", 0, "extra slack before a segment falls back to a cap")

	cmd.PersistentFlags().StringVarP(&f.catalogPath, "catalog", "c", "", "YAML catalog (built-in catalog if empty)")

	cmd.AddCommand(newListCmd(&f))
	return cmd
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(f.catalogPath)
			if err != nil {
				return err
			}
			for _, o := range cat.Objects() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d segments\t%s mm wide\n",
					layout.Label(o), len(o.Segments), models.FormatFloat(2*o.MaxRadius()))
			}
			return nil
		},
	}
}

func run(stdout io.Writer, f flags) error {
	if err := models.ValidateAngle(f.angle); err != nil {
		return err
	}
	if !(f.sealTolerance >= 0) || math.IsInf(f.sealTolerance, 1) {
		return fmt.Errorf("seal tolerance %v: must be a non-negative number", f.sealTolerance)
	}
	if !(f.degenerateMargin >= 0) || math.IsInf(f.degenerateMargin, 1) {
		return fmt.Errorf("degenerate margin %v: must be a non-negative number", f.degenerateMargin)
	}

	cat, err := catalog.Load(f.catalogPath)
	if err != nil {
		return err
	}

	objects, err := selectObjects(cat, f.only)
	if err != nil {
		return err
	}

	doc := layout.Render(objects, f.angle,
		layout.Options{Padding: f.padding, TextSize: f.textSize},
		projector.WithSealTolerance(f.sealTolerance),
		projector.WithDegenerateMargin(f.degenerateMargin),
	)

	w := stdout
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		w = file
	}

	if err := layout.WriteSVG(w, doc); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	if f.out != "" {
		log.Printf("[CLI] Wrote %d objects to %s", len(objects), f.out)
	}
	return nil
}

func selectObjects(cat *catalog.Catalog, only []string) ([]models.Object, error) {
	if len(only) == 0 {
		return cat.Objects(), nil
	}
	out := make([]models.Object, 0, len(only))
	for _, name := range only {
		o, ok := cat.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown object %q", name)
		}
		out = append(out, o)
	}
	return out, nil
}
