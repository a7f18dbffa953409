package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/chazu/hgeom/pkg/config"
	"github.com/chazu/hgeom/pkg/engine"
	"github.com/chazu/hgeom/pkg/tessellate"
)

//go:embed frontend
var frontend embed.FS

//go:embed examples/*.hg
var examples embed.FS

func main() {
	configPath := flag.String("config", "config.json", "path to the viewer configuration")
	debug := flag.Bool("debug", false, "log engine and tessellation details")
	flag.Parse()

	if *debug {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		engine.SetLogger(l)
		tessellate.SetLogger(l)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	assets, err := fs.Sub(frontend, "frontend")
	if err != nil {
		log.Fatalln(err)
	}
	samples, err := fs.Sub(examples, "examples")
	if err != nil {
		log.Fatalln(err)
	}

	app := NewApp(cfg, samples)

	err = wails.Run(&options.App{
		Title:       cfg.Title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		AssetServer: &assetserver.Options{Assets: assets},
		OnStartup:   app.startup,
		Bind:        []interface{}{app},
	})
	if err != nil {
		log.Fatalln(err)
	}
}
