// Package decl loads cqltable descriptors from YAML schema declarations.
//
// It covers deployments where table metadata lives in configuration rather
// than code: one document declares a keyspace and its tables, and every
// table becomes a validated cqltable.Table.
//
// Document shape:
//
//	keyspace: app
//	tables:
//	  - name: events
//	    options: "comment='events' | gc_grace_seconds = 86400"
//	    columns:
//	      - {name: tenant_id, type: TEXT, key: compound, position: 1}
//	      - {name: user_id, type: UUID, key: compound, position: 2}
//	      - {name: created, type: TIMESTAMP, key: cluster, position: 1, order: ASC}
//	      - {name: payload, type: BLOB}
package decl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/NunuM/cqltable"
	"github.com/NunuM/cqltable/types"
)

// Schema is the root of a YAML schema document.
type Schema struct {
	Keyspace string      `yaml:"keyspace"`
	Tables   []TableDecl `yaml:"tables"`
}

// TableDecl declares one table.
type TableDecl struct {
	Name string `yaml:"name"`

	// Options is the raw `|`-separated WITH clause string, same format the
	// compiler accepts.
	Options string `yaml:"options"`

	Columns []ColumnDecl `yaml:"columns"`
}

// ColumnDecl declares one column.
type ColumnDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Key is the column's key role: empty (regular column), "partition",
	// "compound", "cluster" or "static".
	Key string `yaml:"key"`

	// Position ranks compound and cluster keys; defaults to 1.
	Position int `yaml:"position"`

	// Order is the clustering sort direction, ASC or DESC (DESC when empty).
	Order string `yaml:"order"`
}

// Parse decodes a YAML schema document into validated table descriptors.
//
// Returns:
//   - []*cqltable.Table: one descriptor per declared table, document order
//   - error: YAML decode errors, declaration errors, or descriptor
//     validation errors from cqltable.New
func Parse(data []byte) ([]*cqltable.Table, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decl: %w", err)
	}

	tables := make([]*cqltable.Table, 0, len(schema.Tables))
	for _, decl := range schema.Tables {
		tbl, err := buildTable(schema.Keyspace, decl)
		if err != nil {
			return nil, err
		}
		tables = append(tables, tbl)
	}

	return tables, nil
}

// Load decodes a YAML schema document from r.
func Load(r io.Reader) ([]*cqltable.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decl: %w", err)
	}

	return Parse(data)
}

// LoadFile decodes the YAML schema document at path.
func LoadFile(path string) ([]*cqltable.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("decl: %w", err)
	}

	return Parse(data)
}

func buildTable(keyspace string, decl TableDecl) (*cqltable.Table, error) {
	columns := make([]cqltable.Column, 0, len(decl.Columns))
	for _, cd := range decl.Columns {
		col, err := buildColumn(decl.Name, cd)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	tbl, err := cqltable.New(keyspace, decl.Name, columns, cqltable.WithOptions(decl.Options))
	if err != nil {
		return nil, fmt.Errorf("decl: table %q: %w", decl.Name, err)
	}

	return tbl, nil
}

func buildColumn(table string, decl ColumnDecl) (cqltable.Column, error) {
	if decl.Name == "" {
		return cqltable.Column{}, fmt.Errorf("decl: table %q: column with empty name", table)
	}
	if decl.Type == "" {
		return cqltable.Column{}, fmt.Errorf("decl: table %q: column %q has no type", table, decl.Name)
	}

	position := decl.Position
	if position == 0 {
		position = 1
	}

	order := types.Order(strings.ToUpper(decl.Order))
	if order == "" {
		order = types.Desc
	}
	if !order.Valid() {
		return cqltable.Column{}, fmt.Errorf(
			"decl: table %q: column %q: order must be ASC or DESC", table, decl.Name)
	}

	switch strings.ToLower(decl.Key) {
	case "":
		return cqltable.NewColumn(decl.Name, decl.Type), nil
	case "partition":
		return cqltable.NewPrimaryKey(decl.Name, decl.Type), nil
	case "compound":
		return cqltable.NewCompoundKey(decl.Name, decl.Type, position), nil
	case "cluster":
		return cqltable.NewClusterKey(decl.Name, decl.Type, position, order), nil
	case "static":
		return cqltable.NewStaticColumn(decl.Name, decl.Type), nil
	default:
		return cqltable.Column{}, fmt.Errorf(
			"decl: table %q: column %q: unknown key role %q", table, decl.Name, decl.Key)
	}
}
