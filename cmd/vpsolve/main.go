// Command vpsolve compiles exact expected-value strategy tables for video
// poker paytables.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Compile CompileCmd `cmd:"" help:"compute and write a strategy table for one paytable"`
	List    ListCmd    `cmd:"" help:"print the paytable registry"`
	Watch   WatchCmd   `cmd:"" help:"compile a paytable with a live progress dashboard"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("vpsolve"),
		kong.Description("video poker EV solver and strategy table compiler"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	var err error
	switch ctx.Command() {
	case "compile":
		err = cli.Compile.Run()
	case "list":
		err = cli.List.Run()
	case "watch":
		err = cli.Watch.Run()
	default:
		log.Fatal().Msgf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("vpsolve failed")
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}
