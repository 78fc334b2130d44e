package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

func IsDuplicateKeyError(err error) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorCode(11000) || serverErr.HasErrorCode(11001) || serverErr.HasErrorCode(12582) ||
			serverErr.HasErrorCodeWithMessage(16460, " E11000 ")
	}
	return false
}
