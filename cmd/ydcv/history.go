package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sonnes/ydcv/history"
	"github.com/urfave/cli/v3"
)

func historyCmd() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recently looked-up words",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of words to list (0 for all)",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}

			h, err := history.ReadFile(cfg.HistoryFile)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}

			records := h.Top(cmd.Int("limit"))
			if len(records) == 0 {
				return nil
			}

			a := newApp(cmd)
			rnd, err := a.renderer(cfg)
			if err != nil {
				return err
			}

			// Pad by display width so CJK words keep the count column aligned.
			now := a.now()
			width := 0
			for _, r := range records {
				width = max(width, lipgloss.Width(r.Word))
			}

			lines := make([]string, 0, len(records))
			for _, r := range records {
				pad := strings.Repeat(" ", width-lipgloss.Width(r.Word))
				lines = append(lines, rnd.Yellow(r.Word)+pad+"  "+
					rnd.Default(fmt.Sprintf("%3d×  %s", r.Count, history.RelativeTime(r.LastSeen, now))))
			}
			return rnd.Emit("history", strings.Join(lines, "\n"))
		},
	}
}
