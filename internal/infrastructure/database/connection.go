package database

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Chave para o contexto que carrega o request id até os callbacks
type requestIDKey struct{}

// WithRequestID marca o contexto das queries com o request id da chamada HTTP
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// logStatementError cria um callback GORM que registra statements com falha
func logStatementError(log *zap.Logger, op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error == nil || errors.Is(db.Error, gorm.ErrRecordNotFound) {
			return
		}

		fields := []zap.Field{
			zap.String("op", op),
			zap.String("table", db.Statement.Table),
			zap.Error(db.Error),
		}
		if ctx := db.Statement.Context; ctx != nil {
			if id, ok := ctx.Value(requestIDKey{}).(string); ok {
				fields = append(fields, zap.String("request_id", id))
			}
		}
		log.Warn("database statement failed", fields...)
	}
}

// RegisterCallbacks registra os callbacks de log no GORM
func RegisterCallbacks(db *gorm.DB, log *zap.Logger) error {
	cb := db.Callback()
	if err := cb.Create().After("gorm:create").Register("log_create_error", logStatementError(log, "create")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("log_update_error", logStatementError(log, "update")); err != nil {
		return err
	}
	// Adicionar apenas no callback de consulta; Raw/Exec não passam por aqui
	if err := cb.Query().After("gorm:query").Register("log_query_error", logStatementError(log, "query")); err != nil {
		return err
	}
	return nil
}
