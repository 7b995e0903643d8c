package storeerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslateNil(t *testing.T) {
	require.NoError(t, Translate(nil))
}

func TestTranslateNoDocuments(t *testing.T) {
	err := Translate(mongo.ErrNoDocuments)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTranslateDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	err := Translate(dup)
	require.ErrorIs(t, err, ErrIndexConflict)
	require.NotErrorIs(t, err, ErrValidation)
}

func TestTranslateDocumentValidationFailure(t *testing.T) {
	rejected := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}},
	}
	err := Translate(rejected)
	require.ErrorIs(t, err, ErrValidation)
}

func TestTranslateCommandValidationFailure(t *testing.T) {
	err := Translate(mongo.CommandError{Code: 121, Message: "Document failed validation"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestTranslateNetworkError(t *testing.T) {
	netErr := mongo.CommandError{Message: "connection reset", Labels: []string{"NetworkError"}}
	err := Translate(netErr)
	require.ErrorIs(t, err, ErrConnectivity)
}

func TestTranslatePassesUnknownThrough(t *testing.T) {
	boom := errors.New("boom")
	require.Equal(t, boom, Translate(boom))
}
