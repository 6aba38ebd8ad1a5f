// Command interlocking-console boots a plant from a TOML topology file
// and starts the interactive driveway-setting console against stdin
// and stdout (spec.md §4.5, SPEC_FULL.md §4.9).
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/railyard-signalling/interlocking/config"
	"github.com/railyard-signalling/interlocking/control"
	"github.com/rs/zerolog"
)

type options struct {
	Config    string `long:"config" short:"c" required:"true" description:"Path to the plant topology TOML file"`
	LogLevel  string `long:"log-level" default:"info" description:"Log level: trace, debug, info, notice, warning, error, critical, alert, emergency"`
	LogFormat string `long:"log-format" default:"console" choice:"console" choice:"json" description:"Log output format"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log, err := buildLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "interlocking-console:", err)
		os.Exit(1)
	}

	doc, err := config.Load(opts.Config)
	if err != nil {
		log.Alert().Err(err).Log("failed to load plant configuration")
		os.Exit(1)
	}

	plant, err := config.Build(doc, log)
	if err != nil {
		log.Alert().Err(err).Log("failed to build plant from configuration")
		os.Exit(1)
	}

	station := control.NewStation(plant.Manager, os.Stdin, os.Stdout, log)
	if err := station.Run(); err != nil {
		log.Alert().Err(err).Log("control station exited with an error")
		os.Exit(1)
	}
}

func buildLogger(opts options) (*logiface.Logger[logiface.Event], error) {
	level, err := parseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}

	var zl zerolog.Logger
	switch opts.LogFormat {
	case "json":
		zl = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	concrete := izerolog.L.New(
		izerolog.L.WithZerolog(zl),
		logiface.WithLevel[*izerolog.Event](level),
	)
	return concrete.Logger(), nil
}

func parseLevel(name string) (logiface.Level, error) {
	switch name {
	case "trace":
		return logiface.LevelTrace, nil
	case "debug":
		return logiface.LevelDebug, nil
	case "info", "informational":
		return logiface.LevelInformational, nil
	case "notice":
		return logiface.LevelNotice, nil
	case "warning", "warn":
		return logiface.LevelWarning, nil
	case "error":
		return logiface.LevelError, nil
	case "critical":
		return logiface.LevelCritical, nil
	case "alert":
		return logiface.LevelAlert, nil
	case "emergency":
		return logiface.LevelEmergency, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}
