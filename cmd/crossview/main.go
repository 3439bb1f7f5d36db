package main

import (
	"errors"
	"flag"
	"log"

	ebitenrender "chosenoffset.com/crosswire/renderer/ebiten"
	"chosenoffset.com/crosswire/viewer"
	"chosenoffset.com/crosswire/wireloader"
)

func main() {
	inputPath := flag.String("input", "input.txt", "path to the wire panel file (two move lines)")
	flag.Parse()

	screenWidth := 1280
	screenHeight := 800

	panel, err := wireloader.LoadPanel(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load panel: %v", err)
	}
	log.Printf("Loaded panel: wire A has %d points, wire B has %d points",
		len(panel.A), len(panel.B))

	// Initialize the renderer backend (ebiten)
	render := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	view := viewer.New(render, inputMgr, panel, screenWidth, screenHeight)

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("crossview - " + *inputPath)
	engine.SetWindowResizable(true)

	if err := engine.RunGame(view); err != nil && !errors.Is(err, viewer.Terminated) {
		log.Fatal(err)
	}
}
