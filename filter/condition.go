package filter

import (
	"fmt"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/subset"
)

// RangeSpec is a raw numeric range condition: keep rows whose attribute
// lies in [Min, Max], inclusive on both ends. The name may be
// table-qualified ("c:" / "g:"). Min <= Max is validated upstream.
type RangeSpec struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// CategorySpec is a raw membership condition: keep rows whose attribute
// is one of the allowed values, supplied inline or read from an external
// line-delimited Source. When Source is set it takes precedence.
type CategorySpec struct {
	Name   string        `yaml:"name"`
	Values []string      `yaml:"values,omitempty"`
	Source subset.Source `yaml:"-"`
}

// Spec is the declarative condition set of one filter invocation.
// Subsets are a second membership channel with identical semantics,
// compiled into the same predicate pool after Categories.
type Spec struct {
	Ranges     []RangeSpec    `yaml:"ranges,omitempty"`
	Categories []CategorySpec `yaml:"categories,omitempty"`
	Subsets    []CategorySpec `yaml:"subsets,omitempty"`
}

// Empty reports whether the spec holds no conditions.
func (s Spec) Empty() bool {
	return len(s.Ranges) == 0 && len(s.Categories) == 0 && len(s.Subsets) == 0
}

// Validate checks the invariants the compiler assumes: Min <= Max for
// every range, a name on every condition, and values or a source on every
// membership condition. Callers accepting user input run this before
// Compile; the compiler itself assumes valid specs.
func (s Spec) Validate() error {
	for _, rs := range s.Ranges {
		if rs.Name == "" {
			return &ErrInvalidSpec{Reason: "range condition without a name"}
		}
		if rs.Min > rs.Max {
			return &ErrInvalidSpec{
				Name:   rs.Name,
				Reason: fmt.Sprintf("min %v greater than max %v", rs.Min, rs.Max),
			}
		}
	}
	for _, cs := range append(append([]CategorySpec{}, s.Categories...), s.Subsets...) {
		if cs.Name == "" {
			return &ErrInvalidSpec{Reason: "membership condition without a name"}
		}
		if len(cs.Values) == 0 && cs.Source == nil {
			return &ErrInvalidSpec{Name: cs.Name, Reason: "no values and no source"}
		}
	}
	return nil
}

// ErrInvalidSpec indicates a malformed condition spec.
type ErrInvalidSpec struct {
	Name   string
	Reason string
}

func (e *ErrInvalidSpec) Error() string {
	if e.Name == "" {
		return "invalid condition: " + e.Reason
	}
	return fmt.Sprintf("invalid condition %q: %s", e.Name, e.Reason)
}

// RangeCondition is a range condition bound to one concrete attribute of
// one table.
type RangeCondition struct {
	Attr string
	Min  float64
	Max  float64
}

// MembershipCondition is a membership condition bound to one concrete
// attribute of one table, with its allowed values fully materialized.
type MembershipCondition struct {
	Attr   string
	Values []string
}

// Predicates is one table's resolved predicate list.
type Predicates struct {
	Ranges      []RangeCondition
	Memberships []MembershipCondition
}

// Empty reports whether no predicates were resolved for the table.
func (p *Predicates) Empty() bool {
	return len(p.Ranges) == 0 && len(p.Memberships) == 0
}

// Resolved holds the per-table predicate lists produced by Compile.
type Resolved struct {
	Cells Predicates
	Genes Predicates
}

// Table returns the predicate list of the given table.
func (r *Resolved) Table(t catalog.Table) *Predicates {
	if t == catalog.TableGenes {
		return &r.Genes
	}
	return &r.Cells
}
