// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ilka74/TowerDefence/internal/config"
	"github.com/ilka74/TowerDefence/internal/defs"
	"github.com/ilka74/TowerDefence/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	screenW        int
	screenH        int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

func main() {
	settingsPath := flag.String("settings", "configs/settings.json", "путь к файлу настроек")
	levelsPath := flag.String("levels", "", "необязательный JSON с уровнями вместо встроенных")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelsPath != "" {
		if err := defs.LoadLevelDefinitions(*levelsPath); err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, settings))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		screenW:        settings.ScreenWidth,
		screenH:        settings.ScreenHeight,
	}
	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
