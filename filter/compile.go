package filter

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/diag"
)

// Derived-metric name patterns. Names matching neither pattern and found
// in no table are unknown.
var (
	percentTopPattern = regexp.MustCompile(`^pct_counts_in_top_(\d+)_genes$`)
	qcVarPattern      = regexp.MustCompile(`^pct_counts_(\S+)$`)
)

// Compile resolves raw condition specs against the catalog into per-table
// predicate lists plus the derived metrics they require.
//
// Per-condition failures are non-fatal: ambiguous and unknown attributes
// drop the condition with a diagnostic and compilation continues. The only
// fatal path is a membership source that cannot be read.
//
// A numeric name found in neither table is tested against the two derived
// metric patterns; a match routes the condition onto the cell table and
// records the metric request. Bounds of pattern-matched conditions are
// rescaled x100 (the metrics are stored as 0-100 percentages while bounds
// arrive as 0-1 fractions); all other bounds pass through unscaled.
func Compile(ctx context.Context, cat *catalog.Catalog, spec Spec, sink diag.Sink) (*Resolved, *MetricRequest, error) {
	resolved := &Resolved{}
	request := &MetricRequest{}

	for _, rs := range spec.Ranges {
		res := cat.Resolve(rs.Name, catalog.ClassNumerical)
		ptMatch := percentTopPattern.FindStringSubmatch(res.Name)
		qvMatch := qcVarPattern.FindStringSubmatch(res.Name)

		table := res.Table
		switch {
		case res.Matches > 1:
			sink.Warn(diag.Record{
				Code:    diag.CodeAmbiguousAttribute,
				Attr:    rs.Name,
				Message: fmt.Sprintf("parameter %q found in both cell and gene table, dropped from filtering", rs.Name),
			})
			continue
		case res.Matches < 1:
			switch {
			case ptMatch != nil:
				n, err := strconv.Atoi(ptMatch[1])
				if err != nil {
					// \d+ guarantees digits; only overflow reaches here.
					sink.Warn(diag.Record{
						Code:    diag.CodeUnknownAttribute,
						Attr:    rs.Name,
						Message: fmt.Sprintf("parameter %q unavailable, dropped from filtering", rs.Name),
					})
					continue
				}
				request.addPercentTop(n)
				table = catalog.TableCells
			case qvMatch != nil:
				request.addQCVar(qvMatch[1])
				table = catalog.TableCells
			default:
				sink.Warn(diag.Record{
					Code:    diag.CodeUnknownAttribute,
					Attr:    rs.Name,
					Message: fmt.Sprintf("parameter %q unavailable, dropped from filtering", rs.Name),
				})
				continue
			}
		}

		min, max := rs.Min, rs.Max
		if ptMatch != nil || qvMatch != nil {
			min *= 100
			max *= 100
		}

		preds := resolved.Table(table)
		preds.Ranges = append(preds.Ranges, RangeCondition{Attr: res.Name, Min: min, Max: max})
	}

	// Subsets are a second membership channel, compiled after categories
	// into the same pool.
	memberships := make([]CategorySpec, 0, len(spec.Categories)+len(spec.Subsets))
	memberships = append(memberships, spec.Categories...)
	memberships = append(memberships, spec.Subsets...)

	for _, cs := range memberships {
		res := cat.Resolve(cs.Name, catalog.ClassCategorical)
		switch {
		case res.Matches > 1:
			sink.Warn(diag.Record{
				Code:    diag.CodeAmbiguousAttribute,
				Attr:    cs.Name,
				Message: fmt.Sprintf("attribute %q found in both cell and gene table, dropped from filtering", cs.Name),
			})
		case res.Matches == 1:
			values := cs.Values
			if cs.Source != nil {
				var err error
				values, err = cs.Source.ReadValues(ctx)
				if err != nil {
					return nil, nil, fmt.Errorf("condition %q: %w", cs.Name, err)
				}
			}
			preds := resolved.Table(res.Table)
			preds.Memberships = append(preds.Memberships, MembershipCondition{Attr: res.Name, Values: values})
		default:
			sink.Warn(diag.Record{
				Code:    diag.CodeUnknownAttribute,
				Attr:    cs.Name,
				Message: fmt.Sprintf("attribute %q unavailable, dropped from filtering", cs.Name),
			})
		}
	}

	request.finalize()

	return resolved, request, nil
}
