package repository

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func newStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

type rowScanner interface {
	Scan(dest ...any) error
}

// nullable maps an empty id to SQL NULL so that uuid comparisons match nothing.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableRef(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
