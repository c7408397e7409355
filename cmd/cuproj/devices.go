package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cuproj-go/cuproj/internal/backend"
)

func devicesCmd() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "Report compiled-in backends and available devices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "backend",
				Usage:       "execution backend (auto, cpu, cuda)",
				Value:       "auto",
				Destination: &backendName,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("compiled backends: %s\n", backend.Available())

			b, err := backend.Select(backendName)
			if err != nil {
				return err
			}
			count, err := b.DeviceCount()
			if err != nil {
				return err
			}
			fmt.Printf("selected backend:  %s\n", b.Name())
			fmt.Printf("device count:      %d\n", count)
			return nil
		},
	}
}
