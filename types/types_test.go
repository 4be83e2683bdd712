package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NunuM/cqltable/types"
)

func TestOrderValid(t *testing.T) {
	require.True(t, types.Asc.Valid())
	require.True(t, types.Desc.Valid())
	require.False(t, types.Order("").Valid())
	require.False(t, types.Order("ascending").Valid())
}

func TestOrderString(t *testing.T) {
	require.Equal(t, "ASC", types.Asc.String())
	require.Equal(t, "DESC", types.Desc.String())
}

func TestSentinelErrorMessages(t *testing.T) {
	// All sentinel errors carry the library prefix so they are attributable
	// when wrapped by callers.
	errs := []error{
		types.ErrNoPartitionKey,
		types.ErrNoUpdatableColumns,
		types.ErrNoKeyspace,
		types.ErrNoTableName,
		types.ErrNilSession,
	}
	for _, err := range errs {
		require.Contains(t, err.Error(), "cqltable: ")
	}
}
