package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/ydcv/compact"
	"github.com/sonnes/ydcv/core"
	"github.com/sonnes/ydcv/dict"
	"github.com/sonnes/ydcv/history"
	"github.com/sonnes/ydcv/render"
	jsonrender "github.com/sonnes/ydcv/render/json"
	"github.com/urfave/cli/v3"
)

func lookupAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	a := newApp(cmd)
	rnd, err := a.renderer(cfg)
	if err != nil {
		return err
	}

	var hist *history.History
	if cfg.History {
		hist, err = history.ReadFile(cfg.HistoryFile)
		if err != nil {
			log.Warn("history unreadable, not recording", "path", cfg.HistoryFile, "err", err)
		}
	}

	d := dict.Open(cfg.Dict)
	if n, err := d.Len(); err == nil {
		log.Debug("dictionary loaded", "path", cfg.Dict, "entries", n)
	}

	l := &lookup{dict: d, rnd: rnd, hist: hist, a: a}
	if v := cmd.String("compact"); v != "" {
		l.transformers = append(l.transformers, compact.New(compact.Config{StripWeb: v == "no-web"}))
	}
	if cmd.Bool("json") {
		l.raw = jsonrender.New(true)
	}

	if words := cmd.Args().Slice(); len(words) > 0 {
		for _, w := range words {
			if err := l.word(w); err != nil {
				return err
			}
		}
	} else if err := l.stream(ctx); err != nil {
		return err
	}

	if hist != nil && l.recorded > 0 {
		if err := hist.WriteFile(cfg.HistoryFile); err != nil {
			return fmt.Errorf("write history: %w", err)
		}
	}
	return nil
}

// lookup explains words through a renderer and records hits in history.
type lookup struct {
	dict dict.Reader
	rnd  render.Renderer
	hist *history.History
	a    *app

	transformers []core.Transformer
	// raw, when set, replaces the explained body with the entry as JSON.
	raw *jsonrender.Renderer

	recorded int
}

// stream looks up one word per input line until EOF. Blank lines are skipped.
func (l *lookup) stream(ctx context.Context) error {
	sc := bufio.NewScanner(l.a.in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		if err := l.word(w); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (l *lookup) word(w string) error {
	e, err := l.dict.Lookup(w)
	switch {
	case errors.Is(err, dict.ErrNotFound):
		log.Debug("no entry", "word", w)
		e = core.Missing(w)
	case err != nil:
		return err
	default:
		if l.hist != nil {
			l.hist.Record(w, l.a.now())
			l.recorded++
		}
	}

	if len(l.transformers) > 0 {
		// Entries are shared with the dictionary cache.
		e = e.Clone()
		if err := core.Chain(e, l.transformers...); err != nil {
			return fmt.Errorf("transform %q: %w", w, err)
		}
	}

	if l.raw != nil {
		if err := l.raw.Render(l.a.out, e); err != nil {
			return fmt.Errorf("render %q: %w", w, err)
		}
		return nil
	}

	if err := l.rnd.Emit(w, render.Explain(l.rnd, e)); err != nil {
		return fmt.Errorf("emit %q: %w", w, err)
	}
	return nil
}
