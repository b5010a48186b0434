package bough

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window configured by cfg and drives scene until the window is
// closed or the scene's update func returns an error.
//
// Run installs a logger built from cfg.Logging (see SetLogger) unless one
// was installed already.
func Run(scene *Scene, cfg RunConfig) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := applyRunConfig(scene, cfg); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(scene); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// applyRunConfig wires the parts of cfg that do not need a window.
func applyRunConfig(scene *Scene, cfg RunConfig) error {
	if loggerIsNop() {
		l, err := NewLogger(cfg.Logging)
		if err != nil {
			return err
		}
		SetLogger(l)
	}
	if cfg.DesignWidth > 0 && cfg.DesignHeight > 0 {
		scene.SetDesignSize(cfg.DesignWidth, cfg.DesignHeight)
	}
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSWidget())
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	return nil
}
