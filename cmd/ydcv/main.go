package main

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:      "ydcv",
		Usage:     "Look up words in a local dictionary and show them in the terminal or as desktop notifications",
		ArgsUsage: "[words...]",
		Description: `Looks up each word given on the command line. With no words, reads one
word per line from standard input until EOF.

Settings are read from $XDG_CONFIG_HOME/ydcv/config.toml; flags override them.`,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a config file (default: search XDG config dirs)",
				Sources: cli.EnvVars("YDCV_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Colorize output: auto, always, never",
			},
			&cli.BoolFlag{
				Name:    "html",
				Aliases: []string{"H"},
				Usage:   "HTML-style markup output",
			},
			&cli.BoolFlag{
				Name:    "notify",
				Aliases: []string{"n"},
				Usage:   "Show results as desktop notifications",
			},
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "Dictionary file (JSON array of entries)",
				Sources: cli.EnvVars("YDCV_DICT"),
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not record lookups",
			},
			&cli.StringFlag{
				Name:  "compact",
				Usage: "Enable compact mode (--compact=on). Use --compact=no-web to also strip web references",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print raw entries as JSON",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			setupLogger(level)
			return ctx, nil
		},
		Action: lookupAction,
		Commands: []*cli.Command{
			historyCmd(),
		},
	}
}

// setupLogger configures the package-level logger used across ydcv.
func setupLogger(level log.Level) {
	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	styles.Keys["word"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	log.SetStyles(styles)
	log.SetPrefix("ydcv")
	log.SetLevel(level)
}
