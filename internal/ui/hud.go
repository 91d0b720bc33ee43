// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ilka74/TowerDefence/internal/config"
)

// HUDInfo — данные для панели состояния игры.
type HUDInfo struct {
	Money       int
	Selected    string
	LevelName   string
	WavesLeft   int
	EnemiesLeft int
}

// HUD рисует текстовую панель в левом верхнем углу экрана.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Draw выводит баланс, выбранную башню и прогресс уровня.
func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	lines := []string{
		fmt.Sprintf("Money: $%d", info.Money),
		fmt.Sprintf("Selected Tower: %s", info.Selected),
		fmt.Sprintf("%s  Waves Left: %d", info.LevelName, info.WavesLeft),
		fmt.Sprintf("Enemies Left: %d", info.EnemiesLeft),
	}
	y := 20
	for _, line := range lines {
		text.Draw(screen, line, h.face, 10, y, config.TextColor)
		y += 20
	}
}

// DrawBanner выводит крупное сообщение в центре экрана
// (победа, поражение, конец уровня).
func (h *HUD) DrawBanner(screen *ebiten.Image, msg string, clr color.Color, screenW, screenH int) {
	bounds := text.BoundString(h.face, msg)
	x := (screenW - bounds.Dx()) / 2
	y := screenH / 2
	text.Draw(screen, msg, h.face, x, y, clr)
}
