package main

import (
	"flag"
	"log"

	"github.com/decker502/zombierush/pkg/app"
	"github.com/decker502/zombierush/pkg/config"
	"github.com/decker502/zombierush/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	unitsPath = flag.String("units", "", "从磁盘加载单位配置（默认使用内置 data/units.yaml）")
	watch     = flag.Bool("watch", false, "监听 -units 指定的文件并热重载")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		UnitsPath: *unitsPath,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Zombie Rush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Esc 通过 ebiten.Termination 正常退出，RunGame 返回 nil
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
