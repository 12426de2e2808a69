package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneFile := flag.String("scene", "scene.yaml", "scene spec in prefabs/ (a disk copy overrides the embedded one)")
	rigName := flag.String("rig", "", "rig to start on (default: first rig in the scene)")
	watch := flag.Bool("watch", true, "hot-reload specs and scripts when they change on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("camrig")

	game, err := NewGame(*sceneFile, *rigName, *watch)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
