package engine

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wildfunctions/function_families/pkg/sample"
)

// CurveReport summarizes one expression.
type CurveReport struct {
	Expression   string         `json:"expression"`
	Error        string         `json:"error,omitempty"`
	Family       string         `json:"family,omitempty"`
	Name         string         `json:"name,omitempty"`
	Coefficients []float64      `json:"coefficients,omitempty"`
	Canonical    string         `json:"canonical,omitempty"`
	LaTeX        string         `json:"latex,omitempty"`
	Values       []sample.Point `json:"values,omitempty"`
	Samples      []sample.Point `json:"samples,omitempty"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	Config Config        `json:"config"`
	Curves []CurveReport `json:"curves"`
}

// WriteTextFinal writes the report in human-readable format. Samples are
// summarized by count; use CSV or JSON for the points themselves.
func WriteTextFinal(w io.Writer, r FinalReport) {
	for i, c := range r.Curves {
		fmt.Fprintf(w, "========== CURVE %d ==========\n", i+1)
		fmt.Fprintf(w, "Input:     %s\n", c.Expression)
		if c.Error != "" {
			fmt.Fprintf(w, "Error:     %s\n", c.Error)
			continue
		}
		fmt.Fprintf(w, "Family:    %s (%s)\n", c.Family, c.Name)
		fmt.Fprintf(w, "Vector:    %v\n", c.Coefficients)
		fmt.Fprintf(w, "Canonical: %s\n", c.Canonical)
		fmt.Fprintf(w, "LaTeX:     %s\n", c.LaTeX)
		for _, v := range c.Values {
			fmt.Fprintf(w, "f(%v) = %v\n", v.X, v.Y)
		}
		defined := 0
		for _, p := range c.Samples {
			if p.Defined() {
				defined++
			}
		}
		fmt.Fprintf(w, "Samples:   %d (%d defined)\n", len(c.Samples), defined)
	}
}

// WriteJSONFinal writes the report as JSON.
func WriteJSONFinal(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes one row per sample: curve index, x, y. Failed curves
// contribute no rows.
func WriteCSV(w io.Writer, r FinalReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"curve", "x", "y"}); err != nil {
		return err
	}
	for i, c := range r.Curves {
		for _, p := range c.Samples {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
