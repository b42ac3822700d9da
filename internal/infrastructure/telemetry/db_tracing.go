package telemetry

import (
	"time"

	"github.com/hirecoder/backend/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSlowQueryThresh = 200 * time.Millisecond
	queryStartKey          = "telemetry:query_start"
)

// DBTracing attaches otelgorm spans and slow-query marking to a gorm handle
type DBTracing struct {
	dbSystem   string
	logFullSQL bool
	slowThresh time.Duration
	logger     *zap.Logger
}

// NewDBTracing builds the plugin for dbSystem ("postgresql", "sqlite")
func NewDBTracing(cfg config.TelemetryConfig, dbSystem string, logger *zap.Logger) *DBTracing {
	thresh := cfg.DBSlowQueryThresh
	if thresh <= 0 {
		thresh = defaultSlowQueryThresh
	}
	return &DBTracing{
		dbSystem:   dbSystem,
		logFullSQL: cfg.DBLogFullSQL,
		slowThresh: thresh,
		logger:     logger,
	}
}

// Register installs otelgorm and the timing callbacks
func (d *DBTracing) Register(db *gorm.DB) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(d.dbSystem)}
	if !d.logFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	hooks := []struct {
		name   string
		before func(string) error
		after  func(string) error
	}{
		{"create", func(n string) error { return cb.Create().Before("gorm:create").Register(n, d.before) },
			func(n string) error { return cb.Create().After("gorm:create").Register(n, d.after) }},
		{"query", func(n string) error { return cb.Query().Before("gorm:query").Register(n, d.before) },
			func(n string) error { return cb.Query().After("gorm:query").Register(n, d.after) }},
		{"update", func(n string) error { return cb.Update().Before("gorm:update").Register(n, d.before) },
			func(n string) error { return cb.Update().After("gorm:update").Register(n, d.after) }},
		{"delete", func(n string) error { return cb.Delete().Before("gorm:delete").Register(n, d.before) },
			func(n string) error { return cb.Delete().After("gorm:delete").Register(n, d.after) }},
		{"row", func(n string) error { return cb.Row().Before("gorm:row").Register(n, d.before) },
			func(n string) error { return cb.Row().After("gorm:row").Register(n, d.after) }},
		{"raw", func(n string) error { return cb.Raw().Before("gorm:raw").Register(n, d.before) },
			func(n string) error { return cb.Raw().After("gorm:raw").Register(n, d.after) }},
	}
	for _, h := range hooks {
		if err := h.before("otel_timing:before_" + h.name); err != nil {
			return err
		}
		if err := h.after("otel_timing:after_" + h.name); err != nil {
			return err
		}
	}

	d.logger.Info("Database tracing enabled",
		zap.String("db_system", d.dbSystem),
		zap.Duration("slow_query_threshold", d.slowThresh),
	)
	return nil
}

func (d *DBTracing) before(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (d *DBTracing) after(db *gorm.DB) {
	v, ok := db.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	if elapsed < d.slowThresh {
		return
	}

	span := trace.SpanFromContext(db.Statement.Context)
	span.SetAttributes(
		attribute.Bool("db.slow_query", true),
		attribute.Int64("db.duration_ms", elapsed.Milliseconds()),
	)
	d.logger.Warn("Slow query",
		zap.String("table", db.Statement.Table),
		zap.Duration("duration", elapsed),
		zap.Int64("rows_affected", db.Statement.RowsAffected),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
	)
}
