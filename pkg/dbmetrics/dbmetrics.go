package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обертки DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Recorder принимает измерения (реализуется *metrics.Metrics)
type Recorder interface {
	ObserveDBQuery(operation string, failed bool, elapsed time.Duration)
	SetDBPool(open, inUse, idle int)
}

// DefaultPoolInterval период сбора статистики пула соединений
const DefaultPoolInterval = 15 * time.Second

// DB обертка над *sql.DB, измеряющая длительность каждого запроса
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает db и запускает сбор статистики пула с периодом interval до закрытия stop
func Wrap(db *sql.DB, recorder Recorder, interval time.Duration, stop <-chan struct{}) *DB {
	wrapped := &DB{db: db, recorder: recorder}
	go wrapped.collectPoolStats(interval, stop)
	return wrapped
}

// WrapWithDefault Wrap с периодом DefaultPoolInterval
func WrapWithDefault(db *sql.DB, recorder Recorder, stop <-chan struct{}) *DB {
	return Wrap(db, recorder, DefaultPoolInterval, stop)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.recorder.ObserveDBQuery("exec", err != nil, time.Since(start))
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.recorder.ObserveDBQuery("query", err != nil, time.Since(start))
	return rows, err
}

// QueryRowContext учитывает только ошибку выполнения запроса, ошибки Scan видит вызывающий
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	err := row.Err()
	d.recorder.ObserveDBQuery("query_row", err != nil && !errors.Is(err, sql.ErrNoRows), time.Since(start))
	return row
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordPool()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.recordPool()
		}
	}
}

func (d *DB) recordPool() {
	stats := d.db.Stats()
	d.recorder.SetDBPool(stats.OpenConnections, stats.InUse, stats.Idle)
}
