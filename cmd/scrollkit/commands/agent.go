package commands

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollkit"
	"github.com/phanxgames/scrollkit/agent"
)

const goalKey = "goal"

type agentOptions struct {
	area     scrollkit.Rect
	start    scrollkit.Vec2
	velocity scrollkit.Vec2
	moveTo   []float64
	damping  float64
	maxSpeed float64
	minSpeed float64
	mode     string
	padding  float64
	margin   float64
	seconds  float64
}

// simDelegate describes the single simulated goal.
type simDelegate struct {
	agent.DefaultDelegate
	opts agentOptions
	mode agent.EdgeMode
}

func (d *simDelegate) GoalCount(*agent.Agent) int      { return 1 }
func (d *simDelegate) GoalKeys(*agent.Agent) []string { return []string{goalKey} }

func (d *simDelegate) ScrollArea(*agent.Agent, string) scrollkit.Rect    { return d.opts.area }
func (d *simDelegate) StartPosition(*agent.Agent, string) scrollkit.Vec2 { return d.opts.start }

func (d *simDelegate) DampingRatio(*agent.Agent, string) scrollkit.Vec2 {
	return scrollkit.Vec2{X: d.opts.damping, Y: d.opts.damping}
}

func (d *simDelegate) MinVelocity(*agent.Agent, string) scrollkit.Vec2 {
	return scrollkit.Vec2{X: d.opts.minSpeed, Y: d.opts.minSpeed}
}

func (d *simDelegate) MaxVelocity(*agent.Agent, string) scrollkit.Vec2 {
	if d.opts.maxSpeed <= 0 {
		return scrollkit.Vec2{X: math.MaxFloat64, Y: math.MaxFloat64}
	}
	return scrollkit.Vec2{X: d.opts.maxSpeed, Y: d.opts.maxSpeed}
}

func (d *simDelegate) EdgeModes(*agent.Agent, string) agent.EdgeModes {
	return agent.EdgeModes{Top: d.mode, Left: d.mode, Bottom: d.mode, Right: d.mode}
}

func (d *simDelegate) AdsorptionPadding(*agent.Agent, string) scrollkit.EdgeInsets {
	p := d.opts.padding
	return scrollkit.EdgeInsets{Top: p, Left: p, Bottom: p, Right: p}
}

func (d *simDelegate) AdsorptionMargin(*agent.Agent, string) scrollkit.EdgeInsets {
	m := d.opts.margin
	return scrollkit.EdgeInsets{Top: m, Left: m, Bottom: m, Right: m}
}

func parseEdgeMode(s string) (agent.EdgeMode, error) {
	switch s {
	case "none":
		return agent.EdgeNone, nil
	case "in":
		return agent.EdgeIn, nil
	case "out":
		return agent.EdgeOut, nil
	case "both":
		return agent.EdgeBoth, nil
	}
	return 0, fmt.Errorf("unknown edge mode %q (want none, in, out or both)", s)
}

func agentCmd() *cobra.Command {
	var (
		opts  agentOptions
		area  []float64
		start []float64
		vel   []float64
	)
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Simulate one motion-agent goal and trace its position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(area) != 4 {
				return fmt.Errorf("--area wants x,y,width,height")
			}
			if len(start) != 2 || len(vel) != 2 {
				return fmt.Errorf("--start and --velocity want x,y")
			}
			if len(opts.moveTo) != 0 && len(opts.moveTo) != 2 {
				return fmt.Errorf("--move-to wants x,y")
			}
			opts.area = scrollkit.Rect{X: area[0], Y: area[1], Width: area[2], Height: area[3]}
			opts.start = scrollkit.Vec2{X: start[0], Y: start[1]}
			opts.velocity = scrollkit.Vec2{X: vel[0], Y: vel[1]}
			return runAgent(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&area, "area", []float64{0, 0, 400, 300}, "scroll area x,y,width,height")
	f.Float64SliceVar(&start, "start", []float64{200, 150}, "start position x,y")
	f.Float64SliceVar(&vel, "velocity", []float64{0, 0}, "initial velocity x,y")
	f.Float64SliceVar(&opts.moveTo, "move-to", nil, "scripted destination x,y (overrides --velocity)")
	f.Float64Var(&opts.damping, "damping", 0.8, "damping ratio per second, both axes")
	f.Float64Var(&opts.maxSpeed, "max-speed", 0, "per-axis speed limit (0 is unbounded)")
	f.Float64Var(&opts.minSpeed, "min-speed", 0, "per-axis dead zone")
	f.StringVar(&opts.mode, "edge", "none", "edge adsorption on every edge: none, in, out or both")
	f.Float64Var(&opts.padding, "padding", 0, "inward adsorption padding")
	f.Float64Var(&opts.margin, "margin", 0, "outward adsorption margin")
	f.Float64Var(&opts.seconds, "seconds", 2, "simulated time")
	return cmd
}

func runAgent(out io.Writer, opts agentOptions) error {
	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", tps)
	}
	mode, err := parseEdgeMode(opts.mode)
	if err != nil {
		return err
	}
	a := agent.New(&simDelegate{opts: opts, mode: mode})
	if len(opts.moveTo) == 2 {
		a.MoveTo(goalKey, scrollkit.Vec2{X: opts.moveTo[0], Y: opts.moveTo[1]})
	} else {
		a.SetVelocity(goalKey, opts.velocity)
	}

	dt := 1.0 / float64(tps)
	frames := int(math.Round(opts.seconds * float64(tps)))
	for frame := 1; frame <= frames; frame++ {
		a.Update(dt)
		if every > 0 && frame%every == 0 {
			p, _ := a.Position(goalKey)
			v, _ := a.Velocity(goalKey)
			_, _ = fmt.Fprintf(out, "%5d t=%.3f pos=(%8.2f,%8.2f) v=(%8.2f,%8.2f)\n",
				frame, float64(frame)*dt, p.X, p.Y, v.X, v.Y)
		}
	}
	p, _ := a.Position(goalKey)
	_, _ = fmt.Fprintf(out, "final (%.2f,%.2f)\n", p.X, p.Y)
	return nil
}
