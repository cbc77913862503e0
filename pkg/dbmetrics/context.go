package dbmetrics

import "context"

type txContextKey struct{}

// WithTx возвращает контекст с привязанной транзакцией
// Репозитории через GetExecutor автоматически выполняют запросы внутри неё
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext извлекает транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}

// GetExecutor возвращает executor для выполнения запроса:
// транзакцию из контекста, если она есть, иначе переданный по умолчанию
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}
