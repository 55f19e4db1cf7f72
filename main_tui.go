package main

import (
	"context"
	"fmt"
	"gridmap/client"
	"gridmap/config"
	"gridmap/render"
	"gridmap/terminal"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

// runInteractive launches the terminal editor, optionally on a map file.
func runInteractive(cfg config.Config, filename string, logger *log.Logger) error {
	var mapText string
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to load map: %w", err)
		}
		mapText = string(data)
	}

	svc, err := client.New(cfg.ServerURL, client.WithLogger(logger), client.WithTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	pal, _ := render.PaletteByName(cfg.Palette)
	app, err := terminal.NewApp(screen, svc, terminal.Options{
		CellSize: cfg.CellSize,
		Cost:     cfg.Cost,
		Language: cfg.LanguageOr(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")),
		Palette:  pal,
		Timeout:  cfg.Timeout,
		Logger:   logger,
		MapText:  mapText,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("editing against %s", cfg.ServerURL)
	return app.Run(ctx)
}
