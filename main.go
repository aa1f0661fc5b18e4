package main

import (
	"flag"
	"log"

	"github.com/decker502/loadscreen/pkg/app"
	"github.com/decker502/loadscreen/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	settingsFile := flag.String("settings", "", "path to a live-editable settings YAML file")
	editorMode := flag.Bool("editor", false, "treat the session as an editor-like environment")
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		SettingsFile: *settingsFile,
		EditorMode:   *editorMode,
	})
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Loading Screen Demo")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		gameApp.Shutdown()
		log.Fatal(err)
	}

	gameApp.Shutdown()
}
