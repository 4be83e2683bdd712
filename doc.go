// Package cqltable derives Cassandra Query Language statements from a
// declarative description of a table's columns, keys and storage options.
//
// A Table descriptor is built once per record type and every statement the
// table needs is generated from it, so the CQL never drifts from the
// metadata that describes it: table creation and drop DDL, and
// parameterized SELECT/UPDATE/DELETE/INSERT templates with correct key
// ordering, partition-key parenthesization, clustering order and static
// column handling.
//
// # Key Features
//
//   - Deterministic DDL: CREATE TABLE IF NOT EXISTS with partition keys,
//     compound keys, clustering order and AND-chained storage options
//   - DML templates: keyed SELECT/UPDATE/DELETE plus a full-row INSERT,
//     all with ? placeholders for prepared execution
//   - Instance queries: bound statements (template + ordered values) built
//     from a live record's field values
//   - Struct binding: the bind package derives descriptors from cql struct
//     tags, the decl package loads them from YAML
//   - Executor: an optional gocql-backed Session that runs generated
//     statements with pluggable logging and metrics
//
// # Basic Usage
//
//	users, err := cqltable.New("app", "users", []cqltable.Column{
//	    cqltable.NewPrimaryKey("username", "TEXT"),
//	    cqltable.NewColumn("first_name", "TEXT"),
//	    cqltable.NewClusterKey("created", "TIMESTAMP", 1, types.Asc),
//	    cqltable.NewColumn("updated", "TIMESTAMP"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(users.CreateCQL())
//	fmt.Println(users.SelectByPrimaryKeys(cqltable.ProjectAll()))
//
//	stmt := users.StoreQuery(cqltable.RecordMap{
//	    "username":   "rust",
//	    "first_name": "Rust",
//	    "created":    time.Now(),
//	    "updated":    time.Now(),
//	})
//	err = session.Query(stmt.Query, stmt.Args...).Exec()
//
// # Determinism and Concurrency
//
// Generation is a pure, synchronous transformation of the immutable
// descriptor: no I/O, no hidden state, byte-identical output across calls.
// Descriptors and their generated statements are safe to share between
// goroutines without locking, and callers may memoize any generated string
// for the descriptor's lifetime.
//
// # Error Handling
//
// Malformed descriptors fail at construction, before any CQL reaches the
// caller:
//
//   - types.ErrNoPartitionKey: no column defines a partition key
//   - types.ErrNoKeyspace, types.ErrNoTableName: empty identifiers
//
// Generation itself only fails on the update path, with
// types.ErrNoUpdatableColumns when every column belongs to the primary key.
package cqltable
