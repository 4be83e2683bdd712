package cqltable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NunuM/cqltable/types"
)

func TestStoreQueryBindsDeclarationOrder(t *testing.T) {
	tbl := userTable(t)

	created := time.Unix(100, 0)
	updated := time.Unix(200, 0)

	stmt := tbl.StoreQuery(RecordMap{
		"username":         "rust",
		"user_internal_id": "c0ffee",
		"first_name":       "Rust",
		"created":          created,
		"updated":          updated,
	})

	require.Equal(t, tbl.InsertCQL(), stmt.Query)
	require.Equal(t, []any{"rust", "c0ffee", "Rust", created, updated}, stmt.Args)
}

func TestUpdateQueryBindsSetValuesThenKeys(t *testing.T) {
	tbl := userTable(t)

	created := time.Unix(100, 0)
	updated := time.Unix(200, 0)

	stmt, err := tbl.UpdateQuery(RecordMap{
		"username":         "rust",
		"user_internal_id": "c0ffee",
		"first_name":       "IamRoot",
		"created":          created,
		"updated":          updated,
	})
	require.NoError(t, err)

	// The table has a clustering column, so the WHERE clause covers the
	// partition key followed by the clustering key.
	require.Equal(t,
		"UPDATE test.user SET user_internal_id=?, first_name=?, updated=? "+
			"WHERE username=? AND created=?",
		stmt.Query)
	require.Equal(t, []any{"c0ffee", "IamRoot", updated, "rust", created}, stmt.Args)
}

func TestUpdateQueryWithoutClusterKeysUsesPartitionOnly(t *testing.T) {
	tbl, err := New("app", "settings", []Column{
		NewPrimaryKey("name", "TEXT"),
		NewColumn("value", "TEXT"),
	})
	require.NoError(t, err)

	stmt, err := tbl.UpdateQuery(RecordMap{"name": "theme", "value": "dark"})
	require.NoError(t, err)
	require.Equal(t, "UPDATE app.settings SET value=? WHERE name=?", stmt.Query)
	require.Equal(t, []any{"dark", "theme"}, stmt.Args)
}

func TestUpdateQueryFailsOnKeyOnlyTable(t *testing.T) {
	tbl, err := New("app", "membership", []Column{
		NewCompoundKey("group_id", "UUID", 1),
		NewCompoundKey("user_id", "UUID", 2),
	})
	require.NoError(t, err)

	_, err = tbl.UpdateQuery(RecordMap{"group_id": "g", "user_id": "u"})
	require.ErrorIs(t, err, types.ErrNoUpdatableColumns)
}

func TestDeleteQueryBindsKeysInWhereOrder(t *testing.T) {
	tbl := eventsTable(t)

	created := time.Unix(100, 0)
	stmt := tbl.DeleteQuery(RecordMap{
		"tenant_id": "acme",
		"user_id":   "u-1",
		"created":   created,
		"payload":   []byte("ignored"),
	})

	require.Equal(t,
		"DELETE FROM app.events WHERE tenant_id=? AND user_id=? AND created=?",
		stmt.Query)
	require.Equal(t, []any{"acme", "u-1", created}, stmt.Args)
}

func TestDeleteQueryWithoutClusterKeysUsesPartitionOnly(t *testing.T) {
	tbl, err := New("app", "settings", []Column{
		NewPrimaryKey("name", "TEXT"),
		NewColumn("value", "TEXT"),
	})
	require.NoError(t, err)

	stmt := tbl.DeleteQuery(RecordMap{"name": "theme", "value": "dark"})
	require.Equal(t, "DELETE FROM app.settings WHERE name=?", stmt.Query)
	require.Equal(t, []any{"theme"}, stmt.Args)
}

func TestRecordMapUnknownColumnIsNil(t *testing.T) {
	rec := RecordMap{"known": 1}
	require.Equal(t, 1, rec.ColumnValue("known"))
	require.Nil(t, rec.ColumnValue("unknown"))
}
