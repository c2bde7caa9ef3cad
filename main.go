package main

import (
	"flag"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"devconsole/pkg/console"
	"devconsole/pkg/console/builtin"
	"devconsole/pkg/engine/cvar"
	"devconsole/pkg/renderer"
	ebitenrenderer "devconsole/pkg/renderer/ebiten"
	"devconsole/pkg/renderer/tui"
)

func initGettext(library, locale string) {
	if locale == "" {
		return
	}
	gotext.Configure(library, locale, "default")
}

func main() {
	def := console.DefaultConfig()

	backend := flag.String("renderer", "ebiten", "console host: ebiten or tui")
	width := flag.Int("width", 0, "console width in characters (0 = 80, or the terminal width for tui)")
	height := flag.Int("height", 0, "console height in characters (0 = 24, or the terminal height for tui)")
	scale := flag.Float64("scale", 1, "glyph scale factor")
	prompt := flag.String("prompt", def.Prompt, "input prompt")
	layout := flag.String("layout", "grid", "display layout: grid or lines")
	empty := flag.String("empty", "ignore", "Enter on an empty line: ignore, prompt or repeat")
	forwardDelete := flag.Bool("forward-delete", false, "let Delete remove the character under the cursor")
	historyLimit := flag.Int("history", 0, "history entries to keep (0 = unlimited)")
	fontSize := flag.Float64("font-size", 16, "font size for the ebiten host")
	open := flag.Bool("open", true, "start with the console shown (ebiten)")
	locale := flag.String("locale", "", "message catalogue language, e.g. en_GB")
	locales := flag.String("locales", "locales", "message catalogue directory")
	flag.Parse()

	initGettext(*locales, *locale)

	cfg := def
	cfg.Prompt = *prompt
	cfg.ScaleX, cfg.ScaleY = *scale, *scale
	cfg.ForwardDelete = *forwardDelete
	cfg.HistoryLimit = *historyLimit

	var err error
	if cfg.Layout, err = console.ParseLayout(*layout); err != nil {
		log.Fatalf("Invalid -layout: %v", err)
	}
	if cfg.EmptySubmit, err = console.ParseEmptySubmit(*empty); err != nil {
		log.Fatalf("Invalid -empty: %v", err)
	}

	cfg.Width, cfg.Height = *width, *height
	if *backend == "tui" {
		size := tui.Size(*width, *height)
		cfg.Width, cfg.Height = size.X, size.Y
	}

	c := console.New(cfg)

	vars := cvar.New()
	vars.Set("version", renderer.Version)
	if renderer.Commit != "" {
		vars.Set("commit", renderer.Commit)
	}
	if err := builtin.Register(c, vars); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	var r renderer.Renderer
	switch *backend {
	case "ebiten":
		r = ebitenrenderer.New(c, ebitenrenderer.Options{FontSize: *fontSize, Open: *open})
	case "tui":
		r = tui.New(c, os.Stdin, os.Stdout)
	default:
		log.Fatalf("Unknown renderer %q (want ebiten or tui)", *backend)
	}

	if err := r.Init(); err != nil {
		log.Fatalf("Failed to initialise %s renderer: %v", *backend, err)
	}
	if err := r.Run(); err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}
}
