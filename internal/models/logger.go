package models

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a statement is logged as a warning.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm logs to zerolog.
//
// Statements executed with a request context are logged with the logger
// stored in that context, so they carry the request id.
type queryLogger struct {
	fallback      zerolog.Logger
	slowThreshold time.Duration
}

// contextLogger returns the logger stored in ctx and the fallback if there is none.
func contextLogger(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if ctx == nil {
		return fallback
	}

	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return fallback
	}
	return l
}

func (l *queryLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *queryLogger) Info(ctx context.Context, s string, args ...interface{}) {
	contextLogger(ctx, &l.fallback).Info().Msgf(s, args...)
}

func (l *queryLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	contextLogger(ctx, &l.fallback).Warn().Msgf(s, args...)
}

func (l *queryLogger) Error(ctx context.Context, s string, args ...interface{}) {
	contextLogger(ctx, &l.fallback).Error().Msgf(s, args...)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	log := contextLogger(ctx, &l.fallback)

	// Unknown errors have already been logged by errorCallback,
	// everything else is reported to the client
	if err != nil && !isKnownError(err) {
		log.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query error")
		return
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold {
		log.Warn().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Dur("threshold", l.slowThreshold).Msg("[GORM] slow query")
		return
	}

	log.Debug().Err(err).Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("[GORM] query")
}
