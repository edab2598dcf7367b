package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// NewLogger returns a go-kit logger writing to w in the given format
// ("logfmt" or "json") and filtered to the given level
// ("debug", "info", "warn", "error" or "none").
func NewLogger(w io.Writer, levelStr string, format string) (log.Logger, error) {
	var logger log.Logger
	sw := log.NewSyncWriter(w)
	switch format {
	case "", "logfmt":
		logger = log.NewLogfmtLogger(sw)
	case "json":
		logger = log.NewJSONLogger(sw)
	default:
		return nil, errors.Errorf("unsupported log format %q, use logfmt or json", format)
	}

	var allow level.Option
	switch levelStr {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "", "error":
		allow = level.AllowError()
	case "none":
		allow = level.AllowNone()
	default:
		return nil, errors.Errorf("unsupported log level %q", levelStr)
	}

	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
