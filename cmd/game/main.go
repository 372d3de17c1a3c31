package main

import (
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/talkscene/internal/application/game"
	"github.com/younwookim/talkscene/internal/application/scene/stage"
	"github.com/younwookim/talkscene/internal/application/system"
	"github.com/younwookim/talkscene/internal/infrastructure/audio"
	"github.com/younwookim/talkscene/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

var _ system.AudioDevice = (*audio.RainLoop)(nil)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headless and print the result")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	script := system.LoadScript(cfg.Script)

	if *replayFlag != "" {
		summary, err := runReplay(*replayFlag, cfg.Scene, script)
		if err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
		log.Print(summary)
		return
	}

	// Audio is optional: the scene runs silent without a sound device
	rain := audio.NewRainLoop()
	var device system.AudioDevice = rain
	if err := rain.Initialize(); err != nil {
		log.Printf("Audio unavailable, running silent: %v", err)
		device = nil
	}
	defer rain.Cleanup()

	s, err := stage.New(cfg.Scene, script, device, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Scene.Display
	g := game.New(s, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(display.ScreenWidth)*display.Scale), int(float64(display.ScreenHeight)*display.Scale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
