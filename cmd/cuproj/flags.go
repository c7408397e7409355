package main

import "github.com/urfave/cli/v3"

var (
	sourceCRS   string
	targetCRS   string
	backendName string
	logLevel    string
	logFormat   string
	debug       bool
)

func commonProjFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "src-crs",
			Aliases:     []string{"s"},
			Usage:       "source CRS (authority:code, e.g. EPSG:4326)",
			Value:       "EPSG:4326",
			Destination: &sourceCRS,
		},
		&cli.StringFlag{
			Name:        "dst-crs",
			Aliases:     []string{"d"},
			Usage:       "target CRS (authority:code, e.g. EPSG:32633)",
			Destination: &targetCRS,
		},
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "execution backend (auto, cpu, cuda)",
			Value:       "auto",
			Destination: &backendName,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}
