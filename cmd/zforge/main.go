package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zforge/internal/account"
	"github.com/zarlcorp/zforge/internal/cli"
	"github.com/zarlcorp/zforge/internal/config"
	"github.com/zarlcorp/zforge/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zforge"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load(os.Getenv("ZFORGE_CONFIG"))
	if err != nil {
		slog.Error("config", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		runCLI(ctx, cfg, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cfg *config.Config, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zforge %s\n", version)
	case "account":
		cli.CmdAccount(cfg, os.Args[2:])
	case "list":
		cli.CmdList(os.Args[2:])
	case "forget":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: zforge forget <id>")
			os.Exit(1)
		}
		cli.CmdForget(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "zforge: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(cfg *config.Config) error {
	dataDir := cli.DataDir()
	gen := account.New(cfg.GeneratorConfig())
	firstRun := cli.IsFirstRun(dataDir)

	m := tui.New(version, dataDir, cfg, gen, firstRun)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
