//go:build ebiten

package main

import (
	"errors"

	"netmesh/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	flags := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "open the mesh in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			game, err := app.New(cfg, flags.RNG())
			if err != nil {
				return err
			}

			ebiten.SetWindowTitle(cfg.Window.Title)
			ebiten.SetTPS(cfg.Window.TPS)
			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}
