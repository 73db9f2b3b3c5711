// Package sweep runs the spline calculator across a YAML file of cases
// and tolerance classes, producing rows for side-by-side comparison.
package sweep

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/chazu/involute/pkg/spline"
)

// defaultClasses is used when a sweep file does not list tolerance classes.
var defaultClasses = []int{4, 5, 6, 7}

// CaseSpec is one named spline connection in a sweep file. ToleranceClass
// is deliberately absent; the sweep supplies it per run.
type CaseSpec struct {
	Name          string  `yaml:"name"`
	Module        float64 `yaml:"module"`
	Teeth         int     `yaml:"teeth"`
	PressureAngle float64 `yaml:"angle"`
	RootType      string  `yaml:"root"`
	Length        float64 `yaml:"length"`
	Deviation     float64 `yaml:"deviation"`
	// Pointer so an explicit "clearance: 0" stays distinguishable from an
	// omitted field and reaches the calculator's validation.
	FormClearance *float64 `yaml:"clearance"`
}

// File is the parsed shape of a sweep file.
type File struct {
	Classes []int      `yaml:"classes"`
	Cases   []CaseSpec `yaml:"cases"`
}

// Row is one computed case at one tolerance class.
type Row struct {
	Case   string         `yaml:"case" json:"case"`
	Class  int            `yaml:"class" json:"class"`
	Result *spline.Result `yaml:"result" json:"result"`
}

// Load reads and parses a sweep file, applying defaults for omitted
// fields: classes 4..7, flat root, form clearance factor 0.1.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing sweep file: %w", err)
	}

	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("sweep file %s defines no cases", path)
	}
	if len(f.Classes) == 0 {
		f.Classes = append(f.Classes, defaultClasses...)
	}

	seen := make(map[string]bool, len(f.Cases))
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			return nil, fmt.Errorf("case %d has no name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("case %q defined twice", c.Name)
		}
		seen[c.Name] = true
		if c.RootType == "" {
			c.RootType = string(spline.RootFlat)
		}
		if c.FormClearance == nil {
			def := 0.1
			c.FormClearance = &def
		}
	}

	return &f, nil
}

// Run computes every case at every class, in file order with classes
// varying fastest. The first invalid input aborts the sweep.
func Run(f *File) ([]Row, error) {
	rows := make([]Row, 0, len(f.Cases)*len(f.Classes))
	for _, c := range f.Cases {
		for _, class := range f.Classes {
			in := spline.Input{
				Module:              c.Module,
				Teeth:               c.Teeth,
				PressureAngle:       c.PressureAngle,
				RootType:            spline.RootType(c.RootType),
				ToleranceClass:      class,
				Length:              c.Length,
				Deviation:           c.Deviation,
				FormClearanceFactor: *c.FormClearance,
			}
			res, err := spline.Compute(in)
			if err != nil {
				return nil, fmt.Errorf("case %q class %d: %w", c.Name, class, err)
			}
			rows = append(rows, Row{Case: c.Name, Class: class, Result: res})
		}
	}
	return rows, nil
}
