package annfilter

import (
	"fmt"
	"strings"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/diag"
	"github.com/hupe1980/annfilter/frame"
)

// MitoFlag is the synthetic boolean gene attribute marking mitochondrial
// genes.
const MitoFlag = "mito"

// mitoPrefix is the gene-name prefix identifying mitochondrial genes.
const mitoPrefix = "MT-"

// ensureMitoFlag synthesizes the mito gene flag from the configured
// gene-name column when the flag does not exist yet. Absence of the
// column or of any matching gene is non-fatal: a diagnostic is emitted
// and synthesis is skipped.
func ensureMitoFlag(ds *dataset.Dataset, geneName string, sink diag.Sink) {
	if geneName == "" || ds.Var.HasColumn(MitoFlag) {
		return
	}

	var names []string
	if geneName == catalog.IndexAttr {
		names = ds.Var.Index()
	} else {
		col, ok := ds.Var.Column(geneName)
		if !ok || col.Kind() != frame.KindString {
			sink.Warn(diag.Record{
				Code:    diag.CodeMissingGeneColumn,
				Attr:    geneName,
				Message: fmt.Sprintf("specified gene column %q not found, skip calculating expression of mitochondria genes", geneName),
			})
			return
		}
		names = make([]string, ds.NumVar())
		for j := range names {
			names[j] = col.StringAt(j)
		}
	}

	flags := make([]bool, len(names))
	found := false
	for j, name := range names {
		if strings.HasPrefix(name, mitoPrefix) {
			flags[j] = true
			found = true
		}
	}
	if !found {
		sink.Warn(diag.Record{
			Code:    diag.CodeNoMitoGenes,
			Message: "no MT genes found, skip calculating expression of mitochondria genes",
		})
		return
	}

	// Length always matches, the names came from the same table.
	_ = ds.Var.SetBoolColumn(MitoFlag, flags)
}
