// Package bind derives cqltable descriptors from struct tags.
//
// It is the runtime counterpart of annotation-driven metadata attachment:
// a struct declares its columns and key roles in `cql` tags and bind turns
// it into an immutable cqltable.Table. The compiler itself stays
// reflection-free; only this package inspects types.
//
// Tag grammar, comma-separated inside `cql:"..."`:
//
//	name          optional first item, the column name (defaults to the
//	              snake_cased field name)
//	type=TOKEN    required, opaque CQL type token
//	primarykey    single partition key
//	compoundkey=N member of a compound partition key at position N
//	clusterkey=N  clustering column at position N
//	order=ASC     clustering sort direction (DESC when omitted)
//	static        static column
//	-             (as the whole tag) skip the field
//
// Example:
//
//	type User struct {
//	    Username  string    `cql:"type=TEXT,primarykey"`
//	    InternalID string   `cql:"user_internal_id,type=UUID"`
//	    FirstName string    `cql:"type=TEXT"`
//	    Created   time.Time `cql:"type=TIMESTAMP,clusterkey=1,order=ASC"`
//	    Updated   time.Time `cql:"type=TIMESTAMP"`
//	}
//
//	users, err := bind.Table("test", User{})
package bind

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/NunuM/cqltable"
	"github.com/NunuM/cqltable/types"
)

// TagKey is the struct tag inspected by this package.
const TagKey = "cql"

// Table builds a table descriptor from the cql tags of v, which must be a
// struct or a pointer to one. The table name is the snake_cased struct name
// unless overridden with WithTableName.
//
// Parameters:
//   - keyspace: target keyspace
//   - v: tagged struct value (or pointer to one)
//   - opts: optional configuration (table name override, storage options)
//
// Returns:
//   - *cqltable.Table: the derived descriptor
//   - error: tag parse errors, or descriptor validation errors from cqltable.New
func Table(keyspace string, v any, opts ...Option) (*cqltable.Table, error) {
	rt, err := structTypeOf(v)
	if err != nil {
		return nil, err
	}

	cfg := config{name: inflect.Underscore(rt.Name())}
	for _, opt := range opts {
		opt(&cfg)
	}

	var columns []cqltable.Column
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		spec, err := parseTag(field)
		if err != nil {
			return nil, err
		}
		if spec == nil {
			continue
		}
		columns = append(columns, spec.column())
	}

	return cqltable.New(keyspace, cfg.name, columns, cfg.tableOpts...)
}

// Record adapts a tagged struct instance to the cqltable.Record interface,
// so the instance-level builders (StoreQuery, UpdateQuery, DeleteQuery) can
// read its field values by column name.
//
// Parameters:
//   - v: tagged struct value (or pointer to one)
//
// Returns:
//   - cqltable.Record: column-keyed view over the struct's fields
//   - error: tag parse errors, or a non-struct v
func Record(v any) (cqltable.Record, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("bind: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: expected struct, got %s", rv.Kind())
	}

	fields := make(map[string]int)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		spec, err := parseTag(rt.Field(i))
		if err != nil {
			return nil, err
		}
		if spec == nil {
			continue
		}
		fields[spec.name] = i
	}

	return structRecord{value: rv, fields: fields}, nil
}

// Option configures table derivation.
type Option func(*config)

// WithTableName overrides the snake_cased struct name.
func WithTableName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithTableOptions forwards cqltable table options (e.g. storage options)
// to the derived descriptor.
func WithTableOptions(opts ...cqltable.TableOption) Option {
	return func(c *config) {
		c.tableOpts = append(c.tableOpts, opts...)
	}
}

type config struct {
	name      string
	tableOpts []cqltable.TableOption
}

// colSpec is one parsed cql tag.
type colSpec struct {
	name     string
	cqlType  string
	kind     cqltable.ColumnKind
	position int
	order    types.Order
}

func (s *colSpec) column() cqltable.Column {
	return cqltable.Column{
		Name:     s.name,
		Type:     s.cqlType,
		Kind:     s.kind,
		Position: s.position,
		Order:    s.order,
	}
}

// parseTag parses the cql tag of a struct field. It returns nil for fields
// without a cql tag, fields tagged "-", and unexported fields.
func parseTag(field reflect.StructField) (*colSpec, error) {
	tag, ok := field.Tag.Lookup(TagKey)
	if !ok || tag == "-" || !field.IsExported() {
		return nil, nil
	}

	spec := &colSpec{
		name: inflect.Underscore(field.Name),
		kind: cqltable.KindRegular,
	}

	for i, item := range strings.Split(tag, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		key, value, hasValue := strings.Cut(item, "=")
		switch strings.ToLower(key) {
		case "type":
			if !hasValue {
				return nil, tagErr(field, "type requires a value")
			}
			spec.cqlType = value
		case "primarykey":
			if err := spec.setKind(field, cqltable.KindPrimaryKey); err != nil {
				return nil, err
			}
		case "compoundkey":
			if err := spec.setKind(field, cqltable.KindCompoundKey); err != nil {
				return nil, err
			}
			pos, err := tagPosition(field, value, hasValue)
			if err != nil {
				return nil, err
			}
			spec.position = pos
		case "clusterkey":
			if err := spec.setKind(field, cqltable.KindClusterKey); err != nil {
				return nil, err
			}
			pos, err := tagPosition(field, value, hasValue)
			if err != nil {
				return nil, err
			}
			spec.position = pos
		case "order":
			if !hasValue {
				return nil, tagErr(field, "order requires a value")
			}
			order := types.Order(strings.ToUpper(value))
			if !order.Valid() {
				return nil, tagErr(field, "order must be ASC or DESC")
			}
			spec.order = order
		case "static":
			if err := spec.setKind(field, cqltable.KindStatic); err != nil {
				return nil, err
			}
		default:
			if hasValue {
				return nil, tagErr(field, "unknown attribute "+strconv.Quote(key))
			}
			if i != 0 {
				return nil, tagErr(field, "column name must be the first item")
			}
			spec.name = item
		}
	}

	if spec.cqlType == "" {
		return nil, tagErr(field, "missing type attribute")
	}
	if spec.kind == cqltable.KindClusterKey && spec.order == "" {
		spec.order = types.Desc
	}

	return spec, nil
}

func (s *colSpec) setKind(field reflect.StructField, kind cqltable.ColumnKind) error {
	if s.kind != cqltable.KindRegular {
		return tagErr(field, "conflicting key roles")
	}
	s.kind = kind

	return nil
}

func tagPosition(field reflect.StructField, value string, hasValue bool) (int, error) {
	if !hasValue {
		// A bare clusterkey/compoundkey attribute means position 1.
		return 1, nil
	}
	pos, err := strconv.Atoi(value)
	if err != nil || pos < 1 {
		return 0, tagErr(field, "position must be a positive integer")
	}

	return pos, nil
}

func tagErr(field reflect.StructField, msg string) error {
	return fmt.Errorf("bind: field %s: %s", field.Name, msg)
}

func structTypeOf(v any) (reflect.Type, error) {
	rt := reflect.TypeOf(v)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: expected struct, got %v", reflect.TypeOf(v))
	}

	return rt, nil
}

// structRecord reads a struct's field values by column name.
type structRecord struct {
	value  reflect.Value
	fields map[string]int
}

// Compile-time assertion that structRecord implements cqltable.Record.
var _ cqltable.Record = structRecord{}

// ColumnValue returns the field value mapped to the column, or nil for
// unknown columns.
func (r structRecord) ColumnValue(name string) any {
	idx, ok := r.fields[name]
	if !ok {
		return nil
	}

	return r.value.Field(idx).Interface()
}
