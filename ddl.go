package cqltable

import "strings"

// CreateCQL generates the table's DDL:
//
//	CREATE TABLE IF NOT EXISTS <keyspace>.<table> (<columns>, PRIMARY KEY <key>) [WITH ...];
//
// Columns are listed in declaration order; key roles appear only in the
// trailing PRIMARY KEY clause, never inline. With a single partition key and
// no clustering columns the key is rendered without inner parentheses,
// PRIMARY KEY (id); otherwise the partition-key tuple gets its own
// parentheses, PRIMARY KEY ((id, shard), created).
//
// Clustering columns add a WITH CLUSTERING ORDER BY clause; storage options
// are chained after it (or start their own WITH when there is none).
func (t *Table) CreateCQL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(t.qualifiedName())
	b.WriteString(" (")

	for _, col := range t.columns {
		b.WriteString(col.definition())
		b.WriteString(", ")
	}

	b.WriteString("PRIMARY KEY ")
	b.WriteString(t.primaryKeyClause())
	b.WriteString(")")

	clustered := len(t.cls.clusterKeys) > 0
	if clustered {
		b.WriteString(" WITH CLUSTERING ORDER BY (")
		for i, col := range t.cls.clusterKeys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(col.Name)
			b.WriteString(" ")
			b.WriteString(col.Order.String())
		}
		b.WriteString(")")
	}

	for i, clause := range t.options {
		if i == 0 && !clustered {
			b.WriteString(" WITH ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(clause)
	}

	b.WriteString(";")

	return b.String()
}

// DropCQL generates the table's drop statement:
//
//	DROP TABLE IF EXISTS <keyspace>.<table>
func (t *Table) DropCQL() string {
	return "DROP TABLE IF EXISTS " + t.qualifiedName()
}

// primaryKeyClause renders the parenthesized key tuple of the PRIMARY KEY
// clause, inner parentheses included when required.
func (t *Table) primaryKeyClause() string {
	pks := make([]string, len(t.cls.partitionKeys))
	for i, col := range t.cls.partitionKeys {
		pks[i] = col.Name
	}

	// Single partition key, no clustering: flat tuple.
	if len(pks) == 1 && len(t.cls.clusterKeys) == 0 {
		return "(" + pks[0] + ")"
	}

	var b strings.Builder
	b.WriteString("((")
	b.WriteString(strings.Join(pks, ", "))
	b.WriteString(")")
	for _, col := range t.cls.clusterKeys {
		b.WriteString(", ")
		b.WriteString(col.Name)
	}
	b.WriteString(")")

	return b.String()
}
