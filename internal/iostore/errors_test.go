package iostore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("unable to open database file")

	err := ConnectionError("/no/such/dir/railcat.db", originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.StoreConnectionError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "How to fix")
	assert.Len(t, gnErr.Vars, 1)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

// TestPersistenceError_Structure verifies the cause and caller are kept.
func TestPersistenceError_Structure(t *testing.T) {
	originalErr := errors.New("disk I/O error")

	err := PersistenceError("save train", originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PersistenceError, gnErr.Code)
	assert.Equal(t, []any{"save train"}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "TestPersistenceError_Structure")
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		text string
	}{
		{"not connected", NotConnectedError(),
			errcode.StoreNotConnectedError, "without connection"},
		{"schema", SchemaError("trains", errors.New("x")),
			errcode.StoreSchemaError, "trains"},
		{"dup station", DuplicateStationError("warsaw central", "Warsaw Central"),
			errcode.DuplicateError, "Warsaw Central"},
		{"dup route", DuplicateRouteError("A_to_B", "A", "B"),
			errcode.DuplicateError, "A_to_B"},
		{"train", TrainNotFoundError(9999),
			errcode.NotFoundError, "9999"},
		{"station", StationNotFoundError("Nowhere"),
			errcode.NotFoundError, "Nowhere"},
		{"route", RouteNotFoundError("A_to_B"),
			errcode.NotFoundError, "A_to_B"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			gnErr, ok := v.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
			assert.Contains(t, fmt.Sprintf(gnErr.Msg, gnErr.Vars...), v.text)
			assert.NotNil(t, gnErr.Err)
		})
	}
}
