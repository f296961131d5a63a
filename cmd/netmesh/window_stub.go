//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "open the mesh in a window (requires -tags ebiten)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the window build of netmesh requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/netmesh`")
		},
	}
}
