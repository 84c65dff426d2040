package main

import (
	"errors"
	"fmt"
	"os"

	"shaderlab/internal/app"
	"shaderlab/internal/config"
	"shaderlab/internal/controls"
	"shaderlab/internal/fonts"
	"shaderlab/internal/graphics"
	"shaderlab/internal/hud"
	"shaderlab/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "shaderlab:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	path := config.PathFromEnv(os.LookupEnv)
	prefs, loadErr := config.Load(path)
	if loadErr != nil && !errors.Is(loadErr, config.ErrMalformed) {
		return loadErr
	}
	prefs, err := config.WithEnv(prefs, os.LookupEnv)
	if err != nil {
		return err
	}

	level, ok := logger.ParseLevel(prefs.Log.Level)
	lines := logger.New(prefs.Log.Path, level)
	log := lines.Slog()
	if !ok {
		log.Warn("unknown log level, using info", "level", prefs.Log.Level)
	}
	if loadErr != nil {
		log.Warn("config ignored, using defaults", "error", loadErr)
	}
	log.Info("starting", "config", path)

	trace := graphics.NewTrace(log.With("component", "raylib"))
	trace.Install()

	var (
		a      *app.App
		device = graphics.NewDevice()
	)
	return graphics.Run(graphics.Window{
		Width:     prefs.Window.Width,
		Height:    prefs.Window.Height,
		Title:     prefs.Window.Title,
		TargetFPS: prefs.Window.TargetFPS,
	}, graphics.Loop{
		Init: func() error {
			var err error
			a, err = app.New(app.Deps{
				Prefs:      prefs,
				Compiler:   graphics.NewCompiler(trace),
				Device:     device,
				Log:        lines,
				Screenshot: graphics.Screenshot,
			})
			if err != nil {
				return err
			}
			editorPanel := controls.NewEditorPanel(a)
			if prefs.Font != "" {
				if err := loadEditorFont(editorPanel, prefs.Font); err != nil {
					log.Warn("editor font not loaded, using default", "font", prefs.Font, "error", err)
				}
			}
			a.Composer.AddOverlay(editorPanel)
			a.Composer.AddOverlay(controls.NewControlPanel(a))
			a.Composer.AddOverlay(hud.New(a))
			return nil
		},
		Update: func() bool {
			w, h := graphics.ScreenSize()
			return a.Update(app.Input{
				Keys:    graphics.Keys{},
				Chars:   graphics.Chars(),
				Resized: graphics.Resized(),
				Width:   w,
				Height:  h,
				FPS:     graphics.FPS(),
			})
		},
		Draw: func() {
			a.Draw(graphics.Time())
		},
		Close: func() {
			if a != nil {
				a.Close()
			}
			device.Close()
			log.Info("stopped")
		},
	})
}

func loadEditorFont(p *controls.EditorPanel, name string) error {
	path, err := fonts.Find(fonts.Dirs(), name)
	if err != nil {
		return err
	}
	f, err := graphics.LoadFont(path, 32)
	if err != nil {
		return err
	}
	p.SetFont(f)
	return nil
}
