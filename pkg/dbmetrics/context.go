package dbmetrics

import "context"

type executorCtxKey struct{}

// WithExecutor кладет исполнителя (обычно транзакцию) в контекст
// Репозитории достают его через GetExecutor и выполняют запросы в рамках транзакции
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, executor)
}

// GetExecutor возвращает исполнителя из контекста, либо fallback, если его там нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}
