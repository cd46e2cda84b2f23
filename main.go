package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	character := flag.String("character", "character.yaml", "character spec in prefabs/")
	levelName := flag.String("level", "garden.yaml", "level in levels/")
	glide := flag.Bool("glide", true, "start with gliding unlocked")
	debug := flag.Bool("debug", false, "enable debug mode")
	mute := flag.Bool("mute", false, "disable sound cues")
	watch := flag.Bool("watch", true, "reload the character spec when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("garden")

	game, err := NewGame(Config{
		Character: *character,
		Level:     *levelName,
		Glide:     *glide,
		Debug:     *debug,
		Mute:      *mute,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
