package app

import (
	"flag"
	"fmt"

	"shaderlab/internal/logger"
	"shaderlab/internal/shader"
)

// registerCommands installs every action reachable from the control panel, shortcuts and startup lines.
func (a *App) registerCommands() {
	r := a.Commands

	r.Register("compile", "recompile a slot from its buffer (--slot instance|custom, default active)", func(fs *flag.FlagSet) func() error {
		name := fs.String("slot", "", "slot to compile")
		return func() error {
			slot, err := a.slotFlag(*name)
			if err != nil {
				return err
			}
			return a.compile(slot)
		}
	})

	r.Register("toggle", "switch the editor to the other slot", func(fs *flag.FlagSet) func() error {
		return func() error {
			slot := a.Editors.Toggle()
			a.log.Info("editing slot", "slot", slot.String())
			return nil
		}
	})

	r.Register("slot", "select the edited slot by name", func(fs *flag.FlagSet) func() error {
		return func() error {
			if fs.NArg() != 1 {
				return fmt.Errorf("slot: want one slot name")
			}
			slot, err := shader.ParseSlot(fs.Arg(0))
			if err != nil {
				return err
			}
			a.Editors.SetActive(slot)
			return nil
		}
	})

	r.Register("reset", "restore a slot's default source (--slot, --compile)", func(fs *flag.FlagSet) func() error {
		name := fs.String("slot", "", "slot to reset")
		recompile := fs.Bool("compile", false, "compile after resetting")
		return func() error {
			slot, err := a.slotFlag(*name)
			if err != nil {
				return err
			}
			a.Editors.Reset(slot)
			a.log.Info("source reset", "slot", slot.String())
			if *recompile {
				return a.compile(slot)
			}
			return nil
		}
	})

	r.Register("camera", "put the camera back at its start transform", func(fs *flag.FlagSet) func() error {
		return func() error {
			a.Camera.Reset()
			return nil
		}
	})

	r.Register("capture", "save the next frame as PNG (--scale factor)", func(fs *flag.FlagSet) func() error {
		scale := fs.Float64("scale", 1, "resize factor")
		return func() error {
			if *scale <= 0 {
				return fmt.Errorf("capture: scale must be positive")
			}
			a.shotWanted = true
			a.shotScale = *scale
			return nil
		}
	})

	r.Register("loglevel", "set the log level (debug, info, warn, error)", func(fs *flag.FlagSet) func() error {
		return func() error {
			lvl, ok := logger.ParseLevel(fs.Arg(0))
			if !ok {
				return fmt.Errorf("loglevel: unknown level %q", fs.Arg(0))
			}
			a.Log.SetLevel(lvl)
			return nil
		}
	})

	r.Register("help", "list commands", func(fs *flag.FlagSet) func() error {
		return func() error {
			for _, line := range r.Help() {
				a.log.Info(line)
			}
			return nil
		}
	})

	r.Register("quit", "exit the program", func(fs *flag.FlagSet) func() error {
		return func() error {
			a.State.Quit = true
			return nil
		}
	})
}

// slotFlag resolves an optional slot name; empty means the active slot.
func (a *App) slotFlag(name string) (shader.Slot, error) {
	if name == "" {
		return a.Editors.Active(), nil
	}
	return shader.ParseSlot(name)
}
