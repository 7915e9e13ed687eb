package scrollkit

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS sets ebiten's ticks per second. 0 keeps ebiten's default (60).
	TPS        int
	ClearColor Color
	// OnUpdate runs after the scene update each tick. A non-nil error stops
	// the loop and is returned from Run.
	OnUpdate func() error
	// OnDraw paints the frame. scrollkit draws nothing itself.
	OnDraw func(screen *ebiten.Image)
}

type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != ColorClear {
		screen.Fill(g.cfg.ClearColor.RGBA())
	}
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene at ebiten's tick rate until the
// window closes or a hook fails. It blocks.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
