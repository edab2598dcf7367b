package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"go-currency-converter/config"
	"go-currency-converter/console"
	"go-currency-converter/exchange"
	"go-currency-converter/logging"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run a session and return the process exit code.
// Failures are shown to the user once, in red on stderr; the log only records them at info.
func run(stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	fail := color.New(color.FgRed).FprintfFunc()

	cfg, err := config.Load()
	if err != nil {
		fail(stderr, "config: %v\n", err)
		return 1
	}

	logger, err := logging.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fail(stderr, "logger: %v\n", err)
		return 1
	}
	logger = log.With(logger, "session", uuid.NewString())

	currencies, err := cfg.Catalog()
	if err != nil {
		level.Info(logger).Log("msg", "invalid catalog", "err", err)
		fail(stderr, "catalog: %v\n", err)
		return 1
	}

	exchangeService := exchange.NewService(currencies)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	session := console.NewSession(exchangeService, stdin, stdout)
	if err := session.Run(context.Background()); err != nil {
		level.Info(logger).Log("msg", "session aborted", "err", err)
		fail(stderr, "\nerror: %v\n", err)
		return 1
	}
	level.Info(logger).Log("msg", "session finished")
	return 0
}
