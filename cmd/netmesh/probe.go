package main

import (
	"fmt"
	"math"

	"netmesh/internal/app"
	"netmesh/internal/mesh"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	flags := app.NewConfig()
	var (
		offset         float64
		frames         int
		samples        int
		responsiveness float64
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "plot the relaxation and repulsion laws for the current config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if responsiveness <= 0 {
				responsiveness = (cfg.Mesh.ResponsivenessMin + cfg.Mesh.ResponsivenessMax) / 2
			}
			w := cmd.OutOrStdout()

			relax := relaxCurve(cfg.Mesh, offset, frames)
			fmt.Fprintln(w, asciigraph.Plot(relax,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("offset per frame, pointer unset (start %.0f, divisor %.0f)", offset, cfg.Mesh.RelaxDivisor)),
			))
			fmt.Fprintln(w)

			push := repulsionCurve(cfg.Mesh, responsiveness, samples)
			fmt.Fprintln(w, asciigraph.Plot(push,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("push per frame over distance 0..%.0f (responsiveness %.1f)", cfg.Mesh.PointerInfluenceRadius, responsiveness)),
			))
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().Float64Var(&offset, "offset", 40, "initial displacement for the relax plot")
	cmd.Flags().IntVar(&frames, "frames", 90, "frames to plot")
	cmd.Flags().IntVar(&samples, "samples", 80, "distance samples for the repulsion plot")
	cmd.Flags().Float64Var(&responsiveness, "responsiveness", 0, "node responsiveness (0 uses the middle of the range)")
	return cmd
}

// relaxCurve returns the offset of a node displaced by start along x after
// each of frames frames without a pointer. Element 0 is the starting offset.
func relaxCurve(cfg mesh.Config, start float64, frames int) []float64 {
	if frames < 1 {
		frames = 1
	}
	n := mesh.NewNode(0, 0, cfg.ResponsivenessMin)
	n.X = start
	out := make([]float64, 0, frames+1)
	out = append(out, start)
	for i := 0; i < frames; i++ {
		n = mesh.UpdateNode(n, mesh.Pointer{}, cfg.RelaxDivisor)
		out = append(out, math.Hypot(n.Offset()))
	}
	return out
}

// repulsionCurve returns the one-frame displacement of a resting node at
// evenly spaced distances from the pointer, from 0 up to the influence radius.
func repulsionCurve(cfg mesh.Config, responsiveness float64, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	r := cfg.PointerInfluenceRadius
	p := mesh.Pointer{Radius: r}
	p.Move(0, 0)
	out := make([]float64, samples)
	for i := range out {
		d := r * float64(i) / float64(samples-1)
		n := mesh.UpdateNode(mesh.NewNode(d, 0, responsiveness), p, cfg.RelaxDivisor)
		out[i] = math.Hypot(n.Offset())
	}
	return out
}
