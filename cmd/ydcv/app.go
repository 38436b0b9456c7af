package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sonnes/ydcv/config"
	"github.com/sonnes/ydcv/render"
	htmlrender "github.com/sonnes/ydcv/render/html"
	"github.com/sonnes/ydcv/render/plain"
	"github.com/sonnes/ydcv/render/terminal"
	"github.com/urfave/cli/v3"
)

// app holds the streams and collaborators used by CLI commands.
type app struct {
	out io.Writer
	in  io.Reader

	// colorTTY reports whether "auto" color resolves to color.
	colorTTY bool
	now      func() time.Time
}

func newApp(cmd *cli.Command) *app {
	root := cmd.Root()
	a := &app{
		out: root.Writer,
		in:  root.Reader,
		now: time.Now,
	}
	if f, ok := a.out.(*os.File); ok {
		a.colorTTY = terminal.ColorEnabled(f)
	}
	return a
}

// renderer picks the output style. Notify wins over html, html over color.
func (a *app) renderer(cfg config.Config) (render.Renderer, error) {
	switch {
	case cfg.Notify:
		r := htmlrender.New(true)
		r.Out = a.out
		return r, nil
	case cfg.HTML:
		r := htmlrender.New(false)
		r.Out = a.out
		return r, nil
	}

	switch cfg.Color {
	case config.ColorAlways:
		return &terminal.Renderer{Out: a.out}, nil
	case config.ColorNever:
		return &plain.Renderer{Out: a.out}, nil
	case config.ColorAuto:
		if a.colorTTY {
			return &terminal.Renderer{Out: a.out}, nil
		}
		return &plain.Renderer{Out: a.out}, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", cfg.Color)
	}
}

// settings loads the config file and applies flag overrides.
func settings(cmd *cli.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("color") {
		cfg.Color = cmd.String("color")
	}
	if cmd.IsSet("html") {
		cfg.HTML = cmd.Bool("html")
	}
	if cmd.IsSet("notify") {
		cfg.Notify = cmd.Bool("notify")
	}
	if d := cmd.String("dict"); d != "" {
		cfg.Dict = d
	}
	if cmd.Bool("no-history") {
		cfg.History = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
