package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cloudcopper/fixturegen"
	"github.com/cloudcopper/fixturegen/domain/errors"
	"github.com/cloudcopper/fixturegen/infra/config"
	"github.com/cloudcopper/fixturegen/lib"
	"github.com/spf13/afero"
)

const (
	retNoErrorCode      = 0
	retGenericErrorCode = 1
)

func main() {
	// Use output file name from env FIXTUREGEN_OUTPUT
	// and profile from env FIXTUREGEN_PROFILE
	config.FileName = lib.GetEnvDefault("FIXTUREGEN_OUTPUT", config.FileName)
	config.ProfileFileName = lib.GetEnvDefault("FIXTUREGEN_PROFILE", config.ProfileFileName)

	// Handle command line arguments
	var (
		lines   int
		seed    uint64
		stats   bool
		verbose bool
	)
	flag.StringVar(&config.FileName, "o", config.FileName, "output file name")
	flag.StringVar(&config.ProfileFileName, "profile", config.ProfileFileName, "generator profile file name (optional)")
	flag.IntVar(&lines, "lines", -1, "number of lines (default from profile or 1000000)")
	flag.Uint64Var(&seed, "seed", 0, "random seed, 0 is random one")
	flag.BoolVar(&stats, "stats", false, "count lines, words and chars of the generated file")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	//
	// Create logger
	//
	if verbose {
		setDefaultLogger(slog.LevelDebug)
	}
	log := slog.Default()
	log.Debug("starting")

	fs := afero.NewOsFs()
	code := retNoErrorCode
	err := run(log, fs, func(cfg *config.Config) {
		if lines >= 0 {
			cfg.Lines = lines
		}
		if seed != 0 {
			cfg.Seed = seed
		}
		cfg.Stats = cfg.Stats || stats
	})
	if err != nil {
		code = retGenericErrorCode
		var e lib.ErrorCode
		if errors.As(err, &e) {
			code = e.Code()
		}
		log.Error("exit", slog.Int("code", code), slog.Any("err", err))
	} else {
		log.Debug("exit")
	}

	os.Exit(code)
}

func run(log *slog.Logger, fs afero.Fs, override func(*config.Config)) error {
	cfg, err := config.LoadConfig(log, fs, config.ProfileFileName)
	if err != nil {
		return lib.NewErrorCode(err, errors.RetLoadConfigError)
	}
	override(cfg)

	_, err = fixturegen.App(log, fs, cfg, os.Stdout)
	return err
}
