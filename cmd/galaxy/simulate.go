package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/galaxy/clock"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/engine"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/physics"
	"github.com/lixenwraith/galaxy/render"
)

// simStats observes a headless run
type simStats struct {
	engine.NopObserver

	integrator  int
	drift       int
	corrections int
	settledAt   int
	frames      int
}

func (s *simStats) FrameRendered() { s.frames++ }

func (s *simStats) IntegratorTick(float64) { s.integrator++ }

func (s *simStats) DriftTick(d physics.DriftStats) {
	s.drift++
	s.corrections += d.Corrections
}

func (s *simStats) SettledChanged(settled bool) {
	if settled && s.settledAt == 0 {
		s.settledAt = s.frames + 1
	}
}

// simulation is the outcome of a headless run
type simulation struct {
	graph   *graph.Graph
	stats   *simStats
	alpha   float64
	settled bool
	parked  engine.ParkReason
}

// simulate steps a view on a mock clock until it parks or maxFrames is reached
func simulate(cfg *config.Config, ds *graph.Dataset, vp graph.Viewport, maxFrames int, reduced bool, opts ...graph.Option) *simulation {
	g := graph.Build(ds, cfg.Layout, vp, opts...)
	clk := clock.NewMock(time.Unix(0, 0))
	stats := &simStats{}

	view := engine.NewView(g, cfg,
		engine.WithRenderer(render.Discard),
		engine.WithObserver(stats),
		engine.WithClock(clk),
		engine.WithReducedMotion(motionConst(reduced)),
	)

	step := cfg.Engine.FrameInterval.Duration
	var parked engine.ParkReason
	for range maxFrames {
		if parked = view.ParkReason(); parked != engine.ParkNone {
			break
		}
		view.Frame(view.Clock().Now())
		clk.Advance(step)
	}

	return &simulation{
		graph:   g,
		stats:   stats,
		alpha:   view.Simulation().Alpha(),
		settled: view.Simulation().Settled(),
		parked:  parked,
	}
}

type motionConst bool

func (m motionConst) ReducedMotion() bool { return bool(m) }

func newSimulateCmd(o *options) *cobra.Command {
	var (
		frames int
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the layout headless and report convergence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			ds, err := o.loadDataset()
			if err != nil {
				return err
			}
			vp := graph.Viewport{Width: width, Height: height}
			if !vp.Valid() {
				return fmt.Errorf("viewport must be positive, got %vx%v", width, height)
			}

			res := simulate(cfg, ds, vp, frames, o.reducedMotion, o.graphOptions()...)
			report(cmd.OutOrStdout(), ds, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&frames, "frames", 2000, "Maximum frames to run")
	f.Float64Var(&width, "width", 1280, "Viewport width in pixels")
	f.Float64Var(&height, "height", 800, "Viewport height in pixels")
	return cmd
}

func report(w io.Writer, ds *graph.Dataset, res *simulation) {
	banner(w, "headless layout: "+ds.Name)

	state := warn.Sprint("unsettled")
	if res.settled {
		state = good.Sprintf("settled at frame %d", res.stats.settledAt)
	}
	fmt.Fprintf(w, "  Frames:           %d\n", res.stats.frames)
	fmt.Fprintf(w, "  Integrator ticks: %d\n", res.stats.integrator)
	fmt.Fprintf(w, "  Drift ticks:      %d (%d overlap corrections)\n", res.stats.drift, res.stats.corrections)
	fmt.Fprintf(w, "  Final alpha:      %.4f\n", res.alpha)
	fmt.Fprintf(w, "  Layout:           %s\n", state)
	if res.parked != engine.ParkNone {
		fmt.Fprintf(w, "  Loop:             parked (%s)\n", res.parked)
	}
	fmt.Fprintln(w)

	nodes := append([]*graph.Node(nil), res.graph.Nodes...)
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Radius > nodes[j].Radius })

	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{
			n.ID,
			n.Group,
			strconv.FormatFloat(n.Radius, 'f', 1, 64),
			strconv.FormatFloat(n.X, 'f', 1, 64),
			strconv.FormatFloat(n.Y, 'f', 1, 64),
		})
	}
	table(w, []string{"DOMAIN", "GROUP", "RADIUS", "X", "Y"}, rows)
}
