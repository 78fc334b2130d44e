package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
