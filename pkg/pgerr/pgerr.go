package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые сервис обрабатывает отдельно
const (
	CodeUniqueViolation      = "23505"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

// Code возвращает SQLSTATE ошибки PostgreSQL или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsSerializationFailure конфликт сериализации или взаимная блокировка; транзакцию можно повторить
func IsSerializationFailure(err error) bool {
	code := Code(err)
	return code == CodeSerializationFailure || code == CodeDeadlockDetected
}
