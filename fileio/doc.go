// Package fileio loads and saves problem instances.
//
// Formats:
//
//	graph CSV       one "name" row per node, then one "from,to,weight" row per
//	                edge. Rows of any other length are ignored on read.
//	allocation CSV  first row is the cost vector; every following row is
//	                "a_0,...,a_n-1,b" for one <= constraint.
//	LP YAML         objective sense, named decisions and sense-tagged rows.
//	blend YAML      ingredients, quality limits and total quantity.
//
// Every reader returns a fresh instance; callers replace their current one
// wholesale, so a failed read never leaves a half-loaded instance behind.
//
// Errors:
//
//	ErrEmptyFile  - the input holds no records.
//	ErrBadNumber  - a numeric field does not parse (wrapped with its line).
//	ErrBadRecord  - a record is structurally invalid (wrapped with its line).
package fileio
