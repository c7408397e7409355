package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cuproj-go/cuproj/internal/backend"
	"github.com/cuproj-go/cuproj/pkg/pointfile"
	"github.com/cuproj-go/cuproj/pkg/proj"
)

func transformCmd() *cli.Command {
	var (
		inverse    bool
		inputPath  string
		outputPath string
	)

	return &cli.Command{
		Name:      "transform",
		Usage:     "Project coordinate pairs between CRSs",
		ArgsUsage: "[x,y ...]",
		Flags: append(commonProjFlags(),
			&cli.BoolFlag{
				Name:        "inverse",
				Aliases:     []string{"i"},
				Usage:       "run the inverse transform (target CRS back to source CRS)",
				Destination: &inverse,
			},
			&cli.StringFlag{
				Name:        "input",
				Usage:       "path to a .cpf point file to transform (instead of inline pairs)",
				Destination: &inputPath,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "path to write transformed pairs as a .cpf point file",
				Destination: &outputPath,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyTransformConfig(cmd, LoadConfig())

			if targetCRS == "" {
				return fmt.Errorf("missing target CRS (use --dst-crs)")
			}

			coords, err := readCoords(cmd.Args().Slice(), inputPath)
			if err != nil {
				return err
			}
			if len(coords) == 0 {
				return fmt.Errorf("no coordinates to transform (pass inline x,y pairs or --input)")
			}

			if _, err := backend.Select(backendName); err != nil {
				return err
			}

			tr, err := proj.NewTransformer(sourceCRS, targetCRS)
			if err != nil {
				return err
			}
			dir := proj.Forward
			if inverse {
				dir = proj.Inverse
			}
			if err := tr.Transform(dir, coords, coords); err != nil {
				return err
			}

			return writeCoords(coords, outputPath)
		},
	}
}

func readCoords(args []string, inputPath string) ([]proj.Coord, error) {
	if inputPath != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("pass inline pairs or --input, not both")
		}
		f, err := pointfile.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", inputPath, err)
		}
		defer func() { _ = f.Close() }()

		coords := make([]proj.Coord, f.Count())
		for i := range coords {
			x, y := f.Pair(i)
			coords[i] = proj.Coord{X: x, Y: y}
		}
		return coords, nil
	}

	coords := make([]proj.Coord, 0, len(args))
	for _, arg := range args {
		c, err := parsePair(arg)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func parsePair(s string) (proj.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return proj.Coord{}, fmt.Errorf("invalid pair %q (expected x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return proj.Coord{}, fmt.Errorf("invalid pair %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return proj.Coord{}, fmt.Errorf("invalid pair %q: %w", s, err)
	}
	return proj.Coord{X: x, Y: y}, nil
}

func writeCoords(coords []proj.Coord, outputPath string) error {
	if outputPath != "" {
		pairs := make([][2]float64, len(coords))
		for i, c := range coords {
			pairs[i] = [2]float64{c.X, c.Y}
		}
		if err := pointfile.Write(outputPath, pairs); err != nil {
			return fmt.Errorf("write %s: %w", outputPath, err)
		}
		return nil
	}

	w := bufio.NewWriter(os.Stdout)
	for _, c := range coords {
		fmt.Fprintf(w, "%.9f,%.9f\n", c.X, c.Y)
	}
	return w.Flush()
}
