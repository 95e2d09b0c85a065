package main

import (
	"camelcards/internal/config"
	"camelcards/internal/util"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the solver version
var Version = "v0.0.0-dev"

// CLI lists the commands of the solver
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Hands    HandsCmd         `cmd:"" default:"1" help:"Print the total winnings under standard and joker rules"`
	Classify ClassifyCmd      `cmd:"" help:"Print the category of a single hand"`
	Races    RacesCmd         `cmd:"" help:"Print the boat race answers"`
}

func main() {
	cfg := config.Instance()
	setupLogger(cfg)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camelcards"),
		kong.Description("Solves the camel cards and boat race puzzles"),
		kong.UsageOnError(),
		kong.Vars{
			"version": Version,
			"rules":   string(cfg.Rules),
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	log := logrus.WithField("runID", util.NewRunID())
	log.WithField("command", ctx.Command()).Debug("starting")

	err := ctx.Run(log)
	if err != nil {
		log.WithError(err).Error("could not solve")
	}
	ctx.FatalIfErrorf(err)
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !term.IsTerminal(int(os.Stderr.Fd())),
		FullTimestamp: true,
	})
}
