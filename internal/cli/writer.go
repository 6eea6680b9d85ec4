package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/frame"
)

// WriteFrameFile writes an annotation table as TSV in the layout
// LoadFrameFile reads: header with an empty index label, one row per
// entry, row name first.
func WriteFrameFile(path string, fr *frame.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)

	cols := fr.Columns()
	header := make([]string, 0, len(cols)+1)
	header = append(header, "")
	for _, col := range cols {
		header = append(header, col.Name())
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}

	for i, name := range fr.Index() {
		fields := make([]string, 0, len(cols)+1)
		fields = append(fields, name)
		for _, col := range cols {
			fields = append(fields, formatCell(col, i))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func formatCell(col *frame.Column, i int) string {
	switch col.Kind() {
	case frame.KindString:
		return col.StringAt(i)
	case frame.KindBool:
		b, _ := col.BoolAt(i)
		return strconv.FormatBool(b)
	default:
		v, _ := col.Float64At(i)
		if col.Kind() == frame.KindInt {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// WriteMatrixFile writes a matrix as a MatrixMarket coordinate file with
// 1-based indices and non-zeros in row-major order.
func WriteMatrixFile(path string, m dataset.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)

	nnz := 0
	for i := 0; i < m.Rows(); i++ {
		m.RowNonZero(i, func(int, float64) { nnz++ })
	}

	if _, err := fmt.Fprintln(w, "%%MatrixMarket matrix coordinate real general"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d %d %d\n", m.Rows(), m.Cols(), nnz); err != nil {
		return err
	}

	var writeErr error
	for i := 0; i < m.Rows(); i++ {
		m.RowNonZero(i, func(j int, v float64) {
			if writeErr != nil {
				return
			}
			_, writeErr = fmt.Fprintf(w, "%d %d %s\n", i+1, j+1, strconv.FormatFloat(v, 'g', -1, 64))
		})
	}
	if writeErr != nil {
		return writeErr
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
