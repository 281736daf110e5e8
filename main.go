package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cursor-light/internal/config"
	"github.com/iburimskiy/cursor-light/internal/game"
	"github.com/iburimskiy/cursor-light/internal/proximity"
	"github.com/iburimskiy/cursor-light/internal/scene"
)

func main() {
	var (
		groupsPath = flag.String("groups", "", "YAML file with the proximity group table, see assets/groups.yaml (default: built-in)")
		scenePath  = flag.String("scene", "", "YAML file with the page layout (default: built-in)")
		mute       = flag.Bool("mute", false, "disable the click sound")
		debug      = flag.Bool("debug", false, "show the debug overlay")
	)
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	groups, err := loadGroups(*groupsPath)
	if err != nil {
		log.Fatal(err)
	}
	sc, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("scene %vx%v with %d nodes, %d groups", sc.Width, sc.Height, sc.Len(), len(groups))

	g := game.New(game.Options{
		Scene:  sc,
		Groups: groups,
		Sound:  !*mute,
		Debug:  *debug,
	})
	defer g.Close()

	ebiten.SetWindowSize(int(sc.Width), int(sc.Height))
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadGroups(path string) ([]proximity.Group, error) {
	if path == "" {
		return config.DefaultGroups(), nil
	}
	return config.LoadGroupsFile(path)
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Load(defaultSceneYAML)
	}
	return scene.LoadFile(path)
}
