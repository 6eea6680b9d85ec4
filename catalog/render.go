package catalog

import (
	"fmt"
	"io"
	"strings"
)

const indent = "  "

// Render writes a deterministic, indentation-structured listing of the
// catalog: both tables, each with its three classification sets, one
// quoted attribute per line, two spaces of indent per nesting level.
//
// The output is byte-identical across calls on an equal catalog.
func (c *Catalog) Render(w io.Writer) error {
	tables := []struct {
		tag   Table
		attrs *Attributes
	}{
		{TableCells, &c.Cells},
		{TableGenes, &c.Genes},
	}
	classes := []Class{ClassNumerical, ClassCategorical, ClassBoolean}

	for _, tbl := range tables {
		if _, err := fmt.Fprintf(w, "%s:\n", tbl.tag); err != nil {
			return err
		}
		for _, class := range classes {
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, class); err != nil {
				return err
			}
			for _, name := range tbl.attrs.Class(class) {
				if _, err := fmt.Fprintf(w, "%s'%s'\n", strings.Repeat(indent, 2), name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// String renders the catalog listing as a string.
func (c *Catalog) String() string {
	var sb strings.Builder
	_ = c.Render(&sb)
	return sb.String()
}
