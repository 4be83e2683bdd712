package cqltable

import (
	"testing"

	"github.com/NunuM/cqltable/types"
)

func benchmarkTable(b *testing.B) *Table {
	b.Helper()

	tbl, err := New("bench", "events", []Column{
		NewCompoundKey("tenant_id", "TEXT", 1),
		NewCompoundKey("user_id", "UUID", 2),
		NewClusterKey("created", "TIMESTAMP", 1, types.Asc),
		NewColumn("payload", "BLOB"),
		NewColumn("checksum", "BIGINT"),
		NewStaticColumn("owner", "TEXT"),
	}, WithOptions("comment='bench'"))
	if err != nil {
		b.Fatal(err)
	}

	return tbl
}

func BenchmarkCreateCQL(b *testing.B) {
	tbl := benchmarkTable(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tbl.CreateCQL()
	}
}

func BenchmarkSelectByPrimaryAndClusterKeys(b *testing.B) {
	tbl := benchmarkTable(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tbl.SelectByPrimaryAndClusterKeys(ProjectAll())
	}
}

func BenchmarkStoreQuery(b *testing.B) {
	tbl := benchmarkTable(b)
	rec := RecordMap{
		"tenant_id": "acme",
		"user_id":   "u-1",
		"created":   int64(1700000000),
		"payload":   []byte("payload"),
		"checksum":  int64(42),
		"owner":     "ops",
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tbl.StoreQuery(rec)
	}
}
