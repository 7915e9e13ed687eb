package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollkit"
)

// defaultScript flings a table upward, waits, then taps the first row.
const defaultScript = `{"steps": [
	{"action": "mark", "label": "start"},
	{"action": "drag", "fromX": 100, "fromY": 400, "toX": 100, "toY": 100, "frames": 10},
	{"action": "mark", "label": "released"},
	{"action": "wait", "frames": 90},
	{"action": "mark", "label": "settled"},
	{"action": "tap", "x": 100, "y": 20},
	{"action": "mark", "label": "tapped"}
]}`

type replayOptions struct {
	script       string
	sections     int
	rows         int
	rowHeight    float64
	width        float64
	height       float64
	clamped      bool
	releaseScale float64
	extra        int
}

// sampleTable is the data source and delegate of the generated table.
type sampleTable struct {
	scrollkit.NopDelegate
	opts replayOptions
	out  io.Writer
}

func (t *sampleTable) NumberOfSections(*scrollkit.TableView) int { return t.opts.sections }

func (t *sampleTable) NumberOfRows(*scrollkit.TableView, int) int { return t.opts.rows }

func (t *sampleTable) CellForRow(tv *scrollkit.TableView, index scrollkit.IndexPath) *scrollkit.Cell {
	c := scrollkit.NewCell(tv, scrollkit.CellStyleLabel)
	c.SetText(fmt.Sprintf("Row %d.%d", index.Section, index.Row))
	return c
}

func (t *sampleTable) HeaderForSection(tv *scrollkit.TableView, section int) *scrollkit.SectionHeadFoot {
	if t.opts.sections < 2 {
		return nil
	}
	h := scrollkit.NewSectionHeadFoot(tv, scrollkit.SectionStyleLabel)
	h.SetText(fmt.Sprintf("Section %d", section))
	return h
}

func (t *sampleTable) FooterForSection(*scrollkit.TableView, int) *scrollkit.SectionHeadFoot {
	return nil
}

func (t *sampleTable) HeightForRow(*scrollkit.TableView, scrollkit.IndexPath) float64 {
	if t.opts.rowHeight > 0 {
		return t.opts.rowHeight
	}
	return scrollkit.AutomaticDimension
}

// HeightForHeader collapses the header slot of a single-section table.
func (t *sampleTable) HeightForHeader(*scrollkit.TableView, int) float64 {
	if t.opts.sections < 2 {
		return 0
	}
	return scrollkit.AutomaticDimension
}

func (t *sampleTable) DidSelectRow(_ *scrollkit.TableView, index scrollkit.IndexPath) {
	_, _ = fmt.Fprintf(t.out, "select %s\n", index)
}

func (t *sampleTable) DidDeselectRow(_ *scrollkit.TableView, index scrollkit.IndexPath) {
	_, _ = fmt.Fprintf(t.out, "deselect %s\n", index)
}

func replayCmd() *cobra.Command {
	var opts replayOptions
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a touch script against a generated table and trace its scroll offset",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := []byte(defaultScript)
			if opts.script != "" {
				var err error
				if data, err = os.ReadFile(opts.script); err != nil {
					return fmt.Errorf("read script: %w", err)
				}
			}
			return runReplay(cmd.OutOrStdout(), data, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.script, "script", "", "JSON touch script (default: built-in fling and tap)")
	f.IntVar(&opts.sections, "sections", 1, "number of sections")
	f.IntVar(&opts.rows, "rows", 50, "rows per section")
	f.Float64Var(&opts.rowHeight, "row-height", 0, "fixed row height (0 measures the label)")
	f.Float64Var(&opts.width, "width", 320, "table width")
	f.Float64Var(&opts.height, "height", 480, "table height")
	f.BoolVar(&opts.clamped, "clamped", false, "scroll clamped, without momentum")
	f.Float64Var(&opts.releaseScale, "release-scale", 1, "release velocity scale")
	f.IntVar(&opts.extra, "extra-frames", 0, "frames to keep simulating after the script ends")
	return cmd
}

func runReplay(out io.Writer, script []byte, opts replayOptions) error {
	if tps <= 0 {
		return fmt.Errorf("tps must be positive, got %d", tps)
	}
	runner, err := scrollkit.LoadTestScript(script)
	if err != nil {
		return err
	}

	cfg := scrollkit.DefaultTableConfig(opts.width, opts.height)
	cfg.ReleaseVelocityScale = opts.releaseScale
	if opts.clamped {
		cfg.Mode = scrollkit.ScrollClamped
	}
	tv := scrollkit.NewTableView(cfg)
	tv.LabelFont = scrollkit.MonospaceFont{Advance: 8, Line: 16}

	src := &sampleTable{opts: opts, out: out}
	tv.SetDelegate(src)
	tv.SetDataSource(src)

	scene := scrollkit.NewScene()
	scene.AddTable(tv, 0, 0)
	scene.SetTestRunner(runner)

	frame := 0
	runner.OnMark = func(label string) {
		_, _ = fmt.Fprintf(out, "mark %s frame=%d offset=%.2f\n", label, frame, tv.ScrollOffset())
	}

	_, _ = fmt.Fprintf(out, "content=%.2f max=%.2f\n", tv.ContentHeight(), tv.MaxScrollOffset())
	dt := 1.0 / float64(tps)
	remaining := opts.extra
	for !runner.Done() || remaining > 0 {
		if runner.Done() {
			remaining--
		}
		frame++
		scene.UpdateWithDelta(dt)
		if every > 0 && frame%every == 0 {
			momentum, restoring := tv.Velocity()
			_, _ = fmt.Fprintf(out, "%5d t=%.3f offset=%8.2f out=%7.2f v=%8.2f r=%8.2f\n",
				frame, scene.Clock(), tv.ScrollOffset(), tv.OutOfBoundsDistance(), momentum, restoring)
		}
	}
	if sel, ok := tv.Selected(); ok {
		_, _ = fmt.Fprintf(out, "selected %s\n", sel)
	}
	return nil
}
