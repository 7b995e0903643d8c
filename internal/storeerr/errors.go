// Package storeerr defines the error kinds surfaced by the data-access
// layer and translates MongoDB driver errors into them. The layer performs
// no local recovery: every engine failure is wrapped and propagated.
package storeerr

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrConnectivity means the store is unreachable.
	ErrConnectivity = errors.New("store unreachable")
	// ErrSchemaApplication means the engine rejected a collection validator.
	ErrSchemaApplication = errors.New("validator rejected")
	// ErrIndexConflict means a unique index constraint was violated, either
	// by existing data at index creation or by a duplicate write.
	ErrIndexConflict = errors.New("unique index conflict")
	// ErrValidation means the engine's validator rejected a write.
	ErrValidation = errors.New("document failed validation")
	// ErrAggregation means the engine rejected an aggregation pipeline.
	ErrAggregation = errors.New("aggregation rejected")
	// ErrNotFound means a lookup matched no document.
	ErrNotFound = errors.New("not found")
)

// documentValidationFailure is the server code for writes rejected by a
// collection validator.
const documentValidationFailure = 121

// Translate maps a driver error onto one of the package error kinds,
// wrapping so errors.Is still matches. Errors with no mapping pass through
// unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrIndexConflict, err)
	case isValidationFailure(err):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	case isConnectivity(err):
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return err
}

func isValidationFailure(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == documentValidationFailure {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == documentValidationFailure
	}
	return false
}

func isConnectivity(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}
