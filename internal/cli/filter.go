package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/annfilter"
	"github.com/hupe1980/annfilter/subset"
	s3subset "github.com/hupe1980/annfilter/subset/s3"
)

// FilterOptions holds flags for the filter command.
type FilterOptions struct {
	*RootOptions

	Obs    string
	Var    string
	Matrix string

	OutObs    string
	OutVar    string
	OutMatrix string

	GeneName   string
	ListAttr   bool
	SpecFile   string
	Params     []string
	Categories []string
	Subsets    []string
}

// NewFilterCommand creates the filter command.
func NewFilterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FilterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter cells and genes by annotation conditions",
		Long: `Filter the cell and gene tables of a dataset with range and membership
conditions over their attributes. Condition names resolve against both
tables; prefix with "c:" or "g:" to disambiguate. Names matching
pct_counts_<flag> or pct_counts_in_top_<N>_genes trigger metric
computation, with bounds given as fractions of one.

With --list-attr the command prints the filterable attributes of the
dataset instead of filtering.

Example:
  annfilter filter --obs obs.tsv --var var.tsv --matrix matrix.mtx \
    --param n_genes,200,5000 --param pct_counts_mito,0,0.1 \
    --category sample,healthy \
    --out-obs out/obs.tsv --out-var out/var.tsv --out-matrix out/matrix.mtx`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Obs, "obs", "", "cell annotation table, TSV (required)")
	cmd.Flags().StringVar(&opts.Var, "var", "", "gene annotation table, TSV (required)")
	cmd.Flags().StringVar(&opts.Matrix, "matrix", "", "expression matrix, MatrixMarket (required)")
	_ = cmd.MarkFlagRequired("obs")
	_ = cmd.MarkFlagRequired("var")
	_ = cmd.MarkFlagRequired("matrix")

	cmd.Flags().StringVar(&opts.OutObs, "out-obs", "", "write the filtered cell table here")
	cmd.Flags().StringVar(&opts.OutVar, "out-var", "", "write the filtered gene table here")
	cmd.Flags().StringVar(&opts.OutMatrix, "out-matrix", "", "write the filtered matrix here")

	cmd.Flags().StringVar(&opts.GeneName, "gene-name", "index", "gene table column holding gene names, used to flag mitochondrial genes")
	cmd.Flags().BoolVar(&opts.ListAttr, "list-attr", false, "list filterable attributes and exit")
	cmd.Flags().StringVar(&opts.SpecFile, "spec", "", "YAML condition spec, merged before the condition flags")
	cmd.Flags().StringArrayVar(&opts.Params, "param", nil, "range condition name,min,max (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Categories, "category", nil, "membership condition name,v1;v2;... or name,@file (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Subsets, "subset", nil, "membership condition name,file with one value per line (repeatable)")

	return cmd
}

func runFilter(cmd *cobra.Command, opts *FilterOptions) error {
	ctx := cmd.Context()

	ds, err := LoadDataset(opts.Obs, opts.Var, opts.Matrix)
	if err != nil {
		return err
	}

	annOpts := []annfilter.Option{
		annfilter.WithGeneNameColumn(opts.GeneName),
		annfilter.WithLogger(opts.Logger()),
	}

	if opts.ListAttr {
		return annfilter.List(ds, cmd.OutOrStdout(), annOpts...)
	}

	spec, err := buildSpec(ctx, opts)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	if _, err := annfilter.Filter(ctx, ds, spec, annOpts...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "kept %d cells, %d genes\n", ds.NumObs(), ds.NumVar())

	if opts.OutObs != "" {
		if err := WriteFrameFile(opts.OutObs, ds.Obs); err != nil {
			return err
		}
	}
	if opts.OutVar != "" {
		if err := WriteFrameFile(opts.OutVar, ds.Var); err != nil {
			return err
		}
	}
	if opts.OutMatrix != "" {
		if err := WriteMatrixFile(opts.OutMatrix, ds.X); err != nil {
			return err
		}
	}

	return nil
}

// buildSpec merges the YAML spec file (if any) with the condition flags.
func buildSpec(ctx context.Context, opts *FilterOptions) (annfilter.Spec, error) {
	var spec annfilter.Spec

	if opts.SpecFile != "" {
		loaded, err := LoadSpecFile(opts.SpecFile)
		if err != nil {
			return spec, err
		}
		spec = loaded
	}

	for _, raw := range opts.Params {
		rs, err := parseParam(raw)
		if err != nil {
			return spec, err
		}
		spec.Ranges = append(spec.Ranges, rs)
	}

	for _, raw := range opts.Categories {
		cs, err := parseCategory(ctx, raw)
		if err != nil {
			return spec, err
		}
		spec.Categories = append(spec.Categories, cs)
	}

	for _, raw := range opts.Subsets {
		name, ref, ok := strings.Cut(raw, ",")
		if !ok || name == "" || ref == "" {
			return spec, fmt.Errorf("invalid --subset %q: want name,file", raw)
		}
		src, err := valueSource(ctx, ref)
		if err != nil {
			return spec, err
		}
		spec.Subsets = append(spec.Subsets, annfilter.CategorySpec{Name: name, Source: src})
	}

	return spec, nil
}

// parseParam parses a name,min,max range condition flag.
func parseParam(raw string) (annfilter.RangeSpec, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 || parts[0] == "" {
		return annfilter.RangeSpec{}, fmt.Errorf("invalid --param %q: want name,min,max", raw)
	}
	min, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return annfilter.RangeSpec{}, fmt.Errorf("invalid --param %q: min: %w", raw, err)
	}
	max, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return annfilter.RangeSpec{}, fmt.Errorf("invalid --param %q: max: %w", raw, err)
	}
	return annfilter.RangeSpec{Name: parts[0], Min: min, Max: max}, nil
}

// parseCategory parses a membership condition flag. Values are inline,
// semicolon-separated, or "@file" referencing a line-delimited list.
func parseCategory(ctx context.Context, raw string) (annfilter.CategorySpec, error) {
	name, rest, ok := strings.Cut(raw, ",")
	if !ok || name == "" || rest == "" {
		return annfilter.CategorySpec{}, fmt.Errorf("invalid --category %q: want name,values or name,@file", raw)
	}
	if ref, ok := strings.CutPrefix(rest, "@"); ok {
		src, err := valueSource(ctx, ref)
		if err != nil {
			return annfilter.CategorySpec{}, err
		}
		return annfilter.CategorySpec{Name: name, Source: src}, nil
	}
	return annfilter.CategorySpec{Name: name, Values: strings.Split(rest, ";")}, nil
}

// valueSource resolves a value-list reference to a source. s3:// URLs use
// the default AWS credential chain; anything else is a local path.
func valueSource(ctx context.Context, ref string) (subset.Source, error) {
	if rest, ok := strings.CutPrefix(ref, "s3://"); ok {
		bucket, key, found := strings.Cut(rest, "/")
		if !found || bucket == "" || key == "" {
			return nil, fmt.Errorf("invalid s3 reference %q: want s3://bucket/key", ref)
		}
		return s3subset.NewFromDefaultConfig(ctx, bucket, key)
	}
	return subset.Local{Path: ref}, nil
}
