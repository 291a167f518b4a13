// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/densemat/matrix"
)

// Result is what one command produced: a scalar, one or more named
// matrices, or both.
type Result struct {
	Op       string   `json:"op" yaml:"op"`
	Scalar   *float64 `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Matrices []Named  `json:"matrices,omitempty" yaml:"matrices,omitempty"`
}

// Named is a labelled matrix in row-major nested form.
type Named struct {
	Name string      `json:"name" yaml:"name"`
	Rows int         `json:"rows" yaml:"rows"`
	Cols int         `json:"cols" yaml:"cols"`
	Data [][]float64 `json:"data" yaml:"data"`

	grid *matrix.Dense
}

func scalarResult(op string, v float64) *Result {
	return &Result{Op: op, Scalar: &v}
}

func matrixResult(op string, names []string, grids ...*matrix.Dense) *Result {
	res := &Result{Op: op}
	for k, g := range grids {
		res.Matrices = append(res.Matrices, Named{Name: names[k], grid: g})
	}

	return res
}

// finish rounds every value to decimals (when >= 0), folds -0 into 0 and
// fills the exported nested rows.
func (r *Result) finish(decimals int) error {
	if r.Scalar != nil {
		g, err := matrix.FromValues([]float64{*r.Scalar}, 1)
		if err != nil {
			return err
		}
		if g, err = tidy(g, decimals); err != nil {
			return err
		}
		v, _ := g.At(0, 0)
		r.Scalar = &v
	}
	for k := range r.Matrices {
		g, err := tidy(r.Matrices[k].grid, decimals)
		if err != nil {
			return errors.Wrapf(err, "rounding %s", r.Matrices[k].Name)
		}
		n := &r.Matrices[k]
		n.grid = g
		n.Rows, n.Cols = g.Shape()
		n.Data = make([][]float64, n.Rows)
		for i := range n.Data {
			n.Data[i], _ = g.Row(i)
		}
	}

	return nil
}

func tidy(g *matrix.Dense, decimals int) (*matrix.Dense, error) {
	var err error
	if decimals >= 0 {
		if g, err = matrix.Round(g, decimals); err != nil {
			return nil, err
		}
	}

	return matrix.Map(g, func(v float64) float64 {
		if v == 0 {
			return 0
		}

		return v
	})
}

// render writes r to w in the configured format.
func render(w io.Writer, format string, r *Result) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = fmt.Fprintln(w, string(out))

		return err
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(out)

		return err
	default:
		return renderText(w, r)
	}
}

// renderText prints a scalar on its own line and each matrix one bracketed
// row per line; several matrices are headed by their names.
func renderText(w io.Writer, r *Result) error {
	if r.Scalar != nil {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(*r.Scalar, 'g', -1, 64)); err != nil {
			return err
		}
	}
	for _, n := range r.Matrices {
		if len(r.Matrices) > 1 {
			if _, err := fmt.Fprintf(w, "%s:\n", n.Name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, n.grid.String()); err != nil {
			return err
		}
	}

	return nil
}
