package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/annfilter"
	"github.com/hupe1980/annfilter/subset"
)

// specFile is the YAML shape of a condition spec. Membership conditions
// take inline values or a file reference; subsets typically reference a
// file with one value per line.
type specFile struct {
	Ranges     []annfilter.RangeSpec `yaml:"ranges,omitempty"`
	Categories []membershipEntry     `yaml:"categories,omitempty"`
	Subsets    []membershipEntry     `yaml:"subsets,omitempty"`
}

type membershipEntry struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values,omitempty"`
	File   string   `yaml:"file,omitempty"`
}

func (e membershipEntry) toSpec() (annfilter.CategorySpec, error) {
	cs := annfilter.CategorySpec{Name: e.Name, Values: e.Values}
	if e.File != "" {
		if len(e.Values) > 0 {
			return cs, fmt.Errorf("condition %q: values and file are mutually exclusive", e.Name)
		}
		cs.Source = subset.Local{Path: e.File}
	}
	return cs, nil
}

// LoadSpecFile loads a condition spec from a YAML file.
func LoadSpecFile(path string) (annfilter.Spec, error) {
	var spec annfilter.Spec

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, err
	}

	var sf specFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return spec, fmt.Errorf("parse spec %s: %w", path, err)
	}

	spec.Ranges = sf.Ranges
	for _, e := range sf.Categories {
		cs, err := e.toSpec()
		if err != nil {
			return spec, err
		}
		spec.Categories = append(spec.Categories, cs)
	}
	for _, e := range sf.Subsets {
		cs, err := e.toSpec()
		if err != nil {
			return spec, err
		}
		spec.Subsets = append(spec.Subsets, cs)
	}

	return spec, nil
}
