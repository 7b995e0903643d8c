package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

func TestStatusForMapsErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{storeerr.ErrNotFound, http.StatusNotFound},
		{storeerr.ErrIndexConflict, http.StatusConflict},
		{storeerr.ErrValidation, http.StatusBadRequest},
		{storeerr.ErrConnectivity, http.StatusServiceUnavailable},
		{storeerr.ErrAggregation, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, statusFor(tc.err), "error: %v", tc.err)
		// Wrapping must not change the mapping.
		require.Equal(t, tc.want, statusFor(fmt.Errorf("wrapped: %w", tc.err)))
	}
}
