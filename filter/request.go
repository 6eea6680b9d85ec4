package filter

import (
	"slices"
)

// DefaultPercentTop is used when group metrics are requested but no
// percent-of-top-N condition named an N.
var DefaultPercentTop = []int{50}

// MetricRequest is the set of derived metrics that conditions referenced
// but the cell table does not carry yet. It is built during compilation
// and consumed once by metric synthesis, which must run before any
// predicate naming these columns is evaluated.
type MetricRequest struct {
	// QCVars are gene flag names needing a pct_counts_<flag> cell metric.
	QCVars []string
	// PercentTop are the N values needing a pct_counts_in_top_<N>_genes
	// cell metric, sorted ascending.
	PercentTop []int
}

// Empty reports whether no derived metrics are needed.
func (r *MetricRequest) Empty() bool {
	return len(r.QCVars) == 0 && len(r.PercentTop) == 0
}

func (r *MetricRequest) addQCVar(name string) {
	if !slices.Contains(r.QCVars, name) {
		r.QCVars = append(r.QCVars, name)
	}
}

func (r *MetricRequest) addPercentTop(n int) {
	if !slices.Contains(r.PercentTop, n) {
		r.PercentTop = append(r.PercentTop, n)
	}
}

// finalize establishes the deterministic iteration order consumed by
// metric synthesis and display.
func (r *MetricRequest) finalize() {
	slices.Sort(r.PercentTop)
}
