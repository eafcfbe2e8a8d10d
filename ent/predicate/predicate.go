// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// PathSnapshot is the predicate function for pathsnapshot builders.
type PathSnapshot func(*sql.Selector)
