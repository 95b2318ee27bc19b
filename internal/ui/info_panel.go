// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-core-defense/internal/config"
)

// InfoPanel — текстовая панель со сводкой по симуляции
type InfoPanel struct {
	X, Y     int
	fontFace font.Face
}

// PanelStats — значения, которые панель показывает за кадр
type PanelStats struct {
	GameTime    float64
	EnemyCount  int
	Ammo        int
	SpeedFactor float64
	CaptureMode bool
}

func NewInfoPanel(x, y int) *InfoPanel {
	return &InfoPanel{X: x, Y: y, fontFace: basicfont.Face7x13}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, stats PanelStats) {
	lines := []string{
		fmt.Sprintf("time   %6.1fs", stats.GameTime),
		fmt.Sprintf("enemies %5d", stats.EnemyCount),
		fmt.Sprintf("ammo    %5d", stats.Ammo),
		fmt.Sprintf("speed   %5.2f", stats.SpeedFactor),
	}
	if stats.CaptureMode {
		lines = append(lines, "mode  CAPTURE")
	}
	lineHeight := p.fontFace.Metrics().Height.Ceil() + 4
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, p.X, p.Y+i*lineHeight, config.TextColor)
	}
}
