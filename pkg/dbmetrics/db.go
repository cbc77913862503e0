package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/carhub/booking-service/pkg/metrics"
)

// DBExecutor интерфейс выполнения запросов к БД
// Реализуется *sql.DB, *dbmetrics.DB и транзакциями
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обёртка над *sql.DB, записывающая метрики длительности запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор статистики
// connection pool. Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start).Seconds(), err)
	return result, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start).Seconds(), err)
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
// Ошибка выполнения становится известна только при Scan, поэтому здесь не учитывается
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start).Seconds(), nil)
	return row
}

// BeginTx начинает транзакцию; запросы внутри неё также записывают метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, metrics: d.metrics}, nil
}

// collectPoolStats периодически публикует статистику connection pool
func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
		case <-stopCh:
			return
		}
	}
}

// metricsTx транзакция с записью метрик запросов
type metricsTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start).Seconds(), err)
	return result, err
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start).Seconds(), err)
	return rows, err
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start).Seconds(), nil)
	return row
}

func (t *metricsTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricsTx) Rollback() error {
	return t.tx.Rollback()
}

// SqlTxWrapper адаптер *sql.Tx под интерфейс TxExecutor (без метрик)
type SqlTxWrapper struct {
	Tx *sql.Tx
}

func (w *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return w.Tx.ExecContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return w.Tx.QueryContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return w.Tx.QueryRowContext(ctx, query, args...)
}

func (w *SqlTxWrapper) Commit() error {
	return w.Tx.Commit()
}

func (w *SqlTxWrapper) Rollback() error {
	return w.Tx.Rollback()
}
