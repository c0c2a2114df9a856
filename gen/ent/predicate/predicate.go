// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CalorieCache is the predicate function for caloriecache builders.
type CalorieCache func(*sql.Selector)

// Dish is the predicate function for dish builders.
type Dish func(*sql.Selector)

// HealthReportCache is the predicate function for healthreportcache builders.
type HealthReportCache func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// SyncLog is the predicate function for synclog builders.
type SyncLog func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
