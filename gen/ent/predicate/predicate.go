// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CreditItem is the predicate function for credititem builders.
type CreditItem func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
