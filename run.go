package willowgui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size in page units. Zero uses the
	// system viewport.
	Width  int
	Height int
	// ClearColor fills the screen before layers are drawn.
	ClearColor Color
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// OnUpdate is called once per tick after the system has processed input.
	OnUpdate func() error
}

// game adapts a System to ebiten.Game.
type game struct {
	sys *System
	cfg RunConfig

	fpsTimer float64
	fpsText  string
}

func (g *game) Update() error {
	g.sys.Update()
	if g.cfg.ShowFPS {
		g.fpsTimer += 1.0 / float64(ebiten.TPS())
		if g.fpsTimer >= 0.5 || g.fpsText == "" {
			g.fpsTimer = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.sys.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, g.fpsText, 4, 4)
	}
}

// Layout reports the canvas in device pixels and keeps the system viewport in
// sync with the window's page size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	pr := g.sys.pixelRatio
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.sys.width || h != g.sys.height {
		g.sys.SetViewport(w, h)
	}
	return int(w * pr), int(h * pr)
}

// Run opens a window and drives sys until the window is closed or
// OnUpdate returns an error.
func Run(sys *System, cfg RunConfig) error {
	if sys == nil {
		return fmt.Errorf("willowgui: Run: nil system")
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = int(sys.width), int(sys.height)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("willowgui: Run: viewport %dx%d", w, h)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	Logger().Info("run", "title", cfg.Title, "width", w, "height", h, "pixelRatio", sys.pixelRatio)
	return ebiten.RunGame(&game{sys: sys, cfg: cfg})
}

