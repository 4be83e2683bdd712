package cqltable

import (
	"sort"

	"github.com/NunuM/cqltable/types"
)

// classification is the result of partitioning a table's columns into the
// three groups every generator works from.
type classification struct {
	// partitionKeys is sorted ascending by position. A lone primary key has
	// the implicit position 0.
	partitionKeys []Column

	// clusterKeys is sorted ascending by position.
	clusterKeys []Column

	// others holds every remaining column (regular and static) in
	// declaration order.
	others []Column
}

// classify partitions columns by key role.
//
// When both a primary-key column and compound-key columns are declared, the
// compound set wins and the primary-key column joins the regular columns.
// Duplicate positions are not rejected: the sort is stable, so ties fall
// back to declaration order.
//
// Returns:
//   - classification: the three ordered column groups
//   - error: types.ErrNoPartitionKey when no column defines a partition key
func classify(columns []Column) (classification, error) {
	var cls classification

	hasCompound := false
	for _, col := range columns {
		if col.Kind == KindCompoundKey {
			hasCompound = true
			break
		}
	}

	for _, col := range columns {
		switch col.Kind {
		case KindCompoundKey:
			cls.partitionKeys = append(cls.partitionKeys, col)
		case KindPrimaryKey:
			if hasCompound {
				// Demoted: the compound set defines the partition key.
				cls.others = append(cls.others, col)
			} else {
				cls.partitionKeys = append(cls.partitionKeys, col)
			}
		case KindClusterKey:
			if col.Order == "" {
				col.Order = types.Desc
			}
			cls.clusterKeys = append(cls.clusterKeys, col)
		default:
			cls.others = append(cls.others, col)
		}
	}

	if len(cls.partitionKeys) == 0 {
		return classification{}, types.ErrNoPartitionKey
	}

	sort.SliceStable(cls.partitionKeys, func(i, j int) bool {
		return cls.partitionKeys[i].Position < cls.partitionKeys[j].Position
	})
	sort.SliceStable(cls.clusterKeys, func(i, j int) bool {
		return cls.clusterKeys[i].Position < cls.clusterKeys[j].Position
	})

	return cls, nil
}

// isPartitionKey reports whether name is one of the classified partition-key
// columns.
func (c classification) isPartitionKey(name string) bool {
	for _, col := range c.partitionKeys {
		if col.Name == name {
			return true
		}
	}
	return false
}

// isKeyColumn reports whether name belongs to the partition or clustering
// key of the table.
func (c classification) isKeyColumn(name string) bool {
	if c.isPartitionKey(name) {
		return true
	}
	for _, col := range c.clusterKeys {
		if col.Name == name {
			return true
		}
	}
	return false
}
