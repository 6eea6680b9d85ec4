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

// LoadDataset loads a dataset from a TSV cell table, a TSV gene table and
// a MatrixMarket expression matrix. Table row order must match matrix row
// and column order.
func LoadDataset(obsPath, varPath, mtxPath string) (*dataset.Dataset, error) {
	obs, err := LoadFrameFile(obsPath)
	if err != nil {
		return nil, fmt.Errorf("load cell table: %w", err)
	}
	vars, err := LoadFrameFile(varPath)
	if err != nil {
		return nil, fmt.Errorf("load gene table: %w", err)
	}
	x, err := LoadMatrixFile(mtxPath)
	if err != nil {
		return nil, fmt.Errorf("load matrix: %w", err)
	}
	return dataset.New(obs, vars, x)
}

// LoadFrameFile loads an annotation table from a TSV file.
//
// The first header field names the index and is ignored; the first field
// of every data row is the row name. Column kinds are inferred from the
// values: all-integer columns load as Int, all-numeric as Float, anything
// else as String. Boolean-domain string columns are recognized downstream
// by their values, so "true"/"false" columns need no special syntax.
func LoadFrameFile(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: empty table", path)
	}
	header := strings.Split(strings.TrimSuffix(sc.Text(), "\r"), "\t")
	names := header[1:]

	var index []string
	cells := make([][]string, len(names))

	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, header has %d", path, len(index)+1, len(fields), len(header))
		}
		index = append(index, fields[0])
		for j, v := range fields[1:] {
			cells[j] = append(cells[j], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	fr := frame.New(index)
	for j, name := range names {
		if err := fr.SetColumn(inferColumn(name, cells[j])); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return fr, nil
}

func inferColumn(name string, values []string) *frame.Column {
	ints := make([]int64, len(values))
	isInt := true
	for i, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			isInt = false
			break
		}
		ints[i] = n
	}
	if isInt && len(values) > 0 {
		return frame.NewIntColumn(name, ints)
	}

	floats := make([]float64, len(values))
	isFloat := true
	for i, v := range values {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			isFloat = false
			break
		}
		floats[i] = x
	}
	if isFloat && len(values) > 0 {
		return frame.NewFloatColumn(name, floats)
	}

	return frame.NewStringColumn(name, values)
}

// LoadMatrixFile loads an expression matrix from a MatrixMarket file.
// Coordinate files load as CSR, array files as dense (array data is
// column-major per the format).
func LoadMatrixFile(path string) (dataset.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: empty matrix file", path)
	}
	banner := strings.Fields(strings.ToLower(sc.Text()))
	if len(banner) < 4 || banner[0] != "%%matrixmarket" || banner[1] != "matrix" {
		return nil, fmt.Errorf("%s: not a MatrixMarket file", path)
	}
	layout := banner[2]

	// Skip comments up to the size line.
	var size []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		size = strings.Fields(line)
		break
	}
	if size == nil {
		return nil, fmt.Errorf("%s: missing size line", path)
	}

	switch layout {
	case "coordinate":
		return scanCoordinate(path, sc, size)
	case "array":
		return scanArray(path, sc, size)
	default:
		return nil, fmt.Errorf("%s: unsupported MatrixMarket layout %q", path, layout)
	}
}

func scanCoordinate(path string, sc *bufio.Scanner, size []string) (dataset.Matrix, error) {
	if len(size) != 3 {
		return nil, fmt.Errorf("%s: coordinate size line needs rows cols nnz", path)
	}
	rows, err1 := strconv.Atoi(size[0])
	cols, err2 := strconv.Atoi(size[1])
	nnz, err3 := strconv.Atoi(size[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%s: invalid size line", path)
	}

	rowIdx := make([]int, 0, nnz)
	colIdx := make([]int, 0, nnz)
	values := make([]float64, 0, nnz)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s: entry %d: want row col value", path, len(values)+1)
		}
		i, err1 := strconv.Atoi(fields[0])
		j, err2 := strconv.Atoi(fields[1])
		v, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%s: invalid entry %q", path, line)
		}
		if i < 1 || i > rows || j < 1 || j > cols {
			return nil, fmt.Errorf("%s: entry %q out of bounds", path, line)
		}
		rowIdx = append(rowIdx, i-1)
		colIdx = append(colIdx, j-1)
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) != nnz {
		return nil, fmt.Errorf("%s: expected %d entries, found %d", path, nnz, len(values))
	}

	return dataset.NewCSRFromTriplets(rows, cols, rowIdx, colIdx, values), nil
}

func scanArray(path string, sc *bufio.Scanner, size []string) (dataset.Matrix, error) {
	if len(size) != 2 {
		return nil, fmt.Errorf("%s: array size line needs rows cols", path)
	}
	rows, err1 := strconv.Atoi(size[0])
	cols, err2 := strconv.Atoi(size[1])
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%s: invalid size line", path)
	}

	data := make([]float64, rows*cols)
	k := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid entry %q", path, line)
		}
		if k >= len(data) {
			return nil, fmt.Errorf("%s: more than %d entries", path, len(data))
		}
		// Array data is column-major.
		data[(k%rows)*cols+k/rows] = v
		k++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if k != len(data) {
		return nil, fmt.Errorf("%s: expected %d entries, found %d", path, len(data), k)
	}

	return dataset.NewDense(rows, cols, data), nil
}
