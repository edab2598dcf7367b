package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

// leveled picks the failed level when err is set, otherwise the ok level
func (s *loggingService) leveled(err error, ok, failed func(log.Logger) log.Logger) log.Logger {
	if err != nil {
		return failed(s.logger)
	}
	return ok(s.logger)
}

func (s *loggingService) Currencies(ctx context.Context) (currencies []domain.Currency) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "currencies",
			"count", len(currencies),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}

func (s *loggingService) Currency(ctx context.Context, index int) (currency domain.Currency, err error) {
	defer func(begin time.Time) {
		s.leveled(err, level.Debug, level.Warn).Log(
			"method", "currency",
			"index", index,
			"name", currency.Name,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currency(ctx, index)
}

func (s *loggingService) Rate(ctx context.Context, source int, target int) (rate domain.Rate, err error) {
	defer func(begin time.Time) {
		s.leveled(err, level.Debug, level.Warn).Log(
			"method", "rate",
			"source", source,
			"target", target,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rate(ctx, source, target)
}

func (s *loggingService) Convert(ctx context.Context, request domain.Request) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		s.leveled(err, level.Info, level.Error).Log(
			"method", "convert",
			"source", request.Source,
			"target", request.Target,
			"amount", request.Amount,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, request)
}
