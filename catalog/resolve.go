package catalog

import (
	"strings"
)

// Resolution is the outcome of resolving a possibly table-qualified
// attribute name against one classification set.
//
// Matches counts the tables the bare name was found in: 0 (absent),
// 1 (unambiguous) or 2 (ambiguous). Table is the resolved table when
// Matches is 1, or the explicitly requested table for qualified names
// (even when absent there). Callers branch on Matches; ambiguity and
// absence are results, not errors.
type Resolution struct {
	Matches int
	Table   Table
	Name    string
}

// Resolve looks up name in the given classification set of one or both
// tables.
//
// A "c:" or "g:" prefix restricts the lookup to that table; otherwise
// both tables are consulted and each match counts.
func (c *Catalog) Resolve(name string, class Class) Resolution {
	if table, bare, ok := splitQualified(name); ok {
		res := Resolution{Table: table, Name: bare}
		if c.Attributes(table).Contains(bare, class) {
			res.Matches = 1
		}
		return res
	}

	res := Resolution{Name: name}
	if c.Cells.Contains(name, class) {
		res.Matches++
		res.Table = TableCells
	}
	if c.Genes.Contains(name, class) {
		res.Matches++
		res.Table = TableGenes
	}
	if res.Matches != 1 {
		res.Table = TableNone
	}
	return res
}

func splitQualified(name string) (Table, string, bool) {
	switch {
	case strings.HasPrefix(name, "c:"):
		return TableCells, strings.TrimPrefix(name, "c:"), true
	case strings.HasPrefix(name, "g:"):
		return TableGenes, strings.TrimPrefix(name, "g:"), true
	default:
		return TableNone, name, false
	}
}
