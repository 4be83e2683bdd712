package cqltable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NunuM/cqltable/types"
)

func TestNewValidatesIdentifiers(t *testing.T) {
	cols := []Column{NewPrimaryKey("id", "UUID")}

	_, err := New("", "users", cols)
	require.ErrorIs(t, err, types.ErrNoKeyspace)

	_, err = New("   ", "users", cols)
	require.ErrorIs(t, err, types.ErrNoKeyspace)

	_, err = New("app", "", cols)
	require.ErrorIs(t, err, types.ErrNoTableName)
}

func TestNewRequiresPartitionKey(t *testing.T) {
	_, err := New("app", "users", []Column{
		NewColumn("name", "TEXT"),
		NewClusterKey("created", "TIMESTAMP", 1, types.Asc),
	})
	require.ErrorIs(t, err, types.ErrNoPartitionKey)

	// Clustering or static columns alone never define a partition key.
	_, err = New("app", "users", []Column{NewStaticColumn("tag", "TEXT")})
	require.ErrorIs(t, err, types.ErrNoPartitionKey)
}

func TestPartitionKeysOrderedByPosition(t *testing.T) {
	tbl, err := New("app", "events", []Column{
		NewCompoundKey("user_id", "UUID", 2),
		NewColumn("payload", "BLOB"),
		NewCompoundKey("tenant_id", "TEXT", 1),
	})
	require.NoError(t, err)

	pks := tbl.PartitionKeys()
	require.Len(t, pks, 2)
	require.Equal(t, "tenant_id", pks[0].Name)
	require.Equal(t, "user_id", pks[1].Name)
}

func TestClusterKeysOrderedByPosition(t *testing.T) {
	tbl, err := New("app", "events", []Column{
		NewPrimaryKey("id", "UUID"),
		NewClusterKey("minor", "INT", 2, types.Desc),
		NewClusterKey("major", "INT", 1, types.Asc),
	})
	require.NoError(t, err)

	cks := tbl.ClusterKeys()
	require.Len(t, cks, 2)
	require.Equal(t, "major", cks[0].Name)
	require.Equal(t, "minor", cks[1].Name)
}

func TestDuplicatePositionsKeepDeclarationOrder(t *testing.T) {
	// Duplicate positions are intentionally not rejected; the stable sort
	// falls back to declaration order.
	tbl, err := New("app", "events", []Column{
		NewCompoundKey("first", "TEXT", 1),
		NewCompoundKey("second", "TEXT", 1),
		NewClusterKey("c_first", "INT", 1, types.Asc),
		NewClusterKey("c_second", "INT", 1, types.Asc),
	})
	require.NoError(t, err)

	pks := tbl.PartitionKeys()
	require.Equal(t, []string{"first", "second"}, []string{pks[0].Name, pks[1].Name})

	cks := tbl.ClusterKeys()
	require.Equal(t, []string{"c_first", "c_second"}, []string{cks[0].Name, cks[1].Name})
}

func TestCompoundKeyTakesPrecedenceOverPrimaryKey(t *testing.T) {
	// When both roles are declared, the compound set defines the partition
	// key and the primary-key column becomes a regular column.
	tbl, err := New("app", "events", []Column{
		NewPrimaryKey("legacy_id", "UUID"),
		NewCompoundKey("tenant_id", "TEXT", 1),
		NewCompoundKey("user_id", "UUID", 2),
	})
	require.NoError(t, err)

	pks := tbl.PartitionKeys()
	require.Len(t, pks, 2)
	require.Equal(t, "tenant_id", pks[0].Name)
	require.Equal(t, "user_id", pks[1].Name)

	// The demoted column is now updatable and listed in the column defs.
	stmt, err := tbl.UpdateByPrimaryKeys()
	require.NoError(t, err)
	require.Contains(t, stmt, "SET legacy_id=?")
}

func TestClusterOrderDefaultsToDesc(t *testing.T) {
	tbl, err := New("app", "events", []Column{
		NewPrimaryKey("id", "UUID"),
		NewClusterKey("created", "TIMESTAMP", 1, ""),
	})
	require.NoError(t, err)

	cks := tbl.ClusterKeys()
	require.Equal(t, types.Desc, cks[0].Order)
	require.Contains(t, tbl.CreateCQL(), "CLUSTERING ORDER BY (created DESC)")
}

func TestWithOptionsSplitsOnPipe(t *testing.T) {
	tbl, err := New("app", "users",
		[]Column{NewPrimaryKey("id", "UUID")},
		WithOptions("comment='x' | COMPACTION = {'y':'z'}"),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"comment='x'", "COMPACTION = {'y':'z'}"}, tbl.Options())
}

func TestWithOptionsSkipsEmptySegments(t *testing.T) {
	tbl, err := New("app", "users",
		[]Column{NewPrimaryKey("id", "UUID")},
		WithOptions(" | comment='x' ||  "),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"comment='x'"}, tbl.Options())
}

func TestWithOptionClauses(t *testing.T) {
	tbl, err := New("app", "users",
		[]Column{NewPrimaryKey("id", "UUID")},
		WithOptionClauses("comment='x'", "  ", "gc_grace_seconds = 86400"),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"comment='x'", "gc_grace_seconds = 86400"}, tbl.Options())
}

func TestAccessorsReturnCopies(t *testing.T) {
	cols := []Column{
		NewPrimaryKey("id", "UUID"),
		NewColumn("name", "TEXT"),
	}
	tbl, err := New("app", "users", cols)
	require.NoError(t, err)

	// Mutating the input slice or any returned slice must not leak into the
	// descriptor.
	cols[1].Name = "mutated"
	returned := tbl.Columns()
	returned[0].Name = "mutated"

	require.Equal(t, "name", tbl.Columns()[1].Name)
	require.Equal(t, "id", tbl.Columns()[0].Name)
}

func TestMustNewPanicsOnBadDescriptor(t *testing.T) {
	require.Panics(t, func() {
		MustNew("app", "users", []Column{NewColumn("name", "TEXT")})
	})
	require.NotPanics(t, func() {
		MustNew("app", "users", []Column{NewPrimaryKey("id", "UUID")})
	})
}
