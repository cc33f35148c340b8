// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kfe/kfe"
	"github.com/katalvlaran/kfe/metrics"
)

// Optimal-radius markers.
const (
	MarkShannon  = "KFE E"
	MarkKullback = "KFE K"
	ZoneWorking  = "working"
)

// Row is one line of the radius table.
type Row struct {
	Class    int     `json:"class"`
	Radius   int     `json:"radius"`
	D1       float64 `json:"d1"`
	Alpha    float64 `json:"alpha"`
	Beta     float64 `json:"beta"`
	D2       float64 `json:"d2"`
	Shannon  float64 `json:"shannon"`
	Kullback float64 `json:"kullback"`
	Reliable bool    `json:"reliable"`
	Optimal  string  `json:"optimal,omitempty"`
}

// Header is the CSV header of the radius table.
func Header() []string {
	return []string{"class", "radius", "d1", "alpha", "beta", "d2", "kfe_shannon", "kfe_kullback", "zone", "optimal"}
}

// marker joins the optimal tags that apply to radius.
func marker(radius, shannonAt, kullbackAt int) string {
	var tags []string
	if radius == shannonAt {
		tags = append(tags, MarkShannon)
	}
	if radius == kullbackAt {
		tags = append(tags, MarkKullback)
	}

	return strings.Join(tags, ", ")
}

// ClassRows builds the table of one class from its scored list.
func ClassRows(class int, list []metrics.RadiusMetric) []Row {
	eAt, _, eOK := kfe.BestAt(list, kfe.ShannonCriterion)
	kAt, _, kOK := kfe.BestAt(list, kfe.KullbackCriterion)
	if !eOK {
		eAt = -1
	}
	if !kOK {
		kAt = -1
	}

	out := make([]Row, len(list))
	for i, m := range list {
		out[i] = Row{
			Class:    class,
			Radius:   m.Radius,
			D1:       m.D1,
			Alpha:    m.Alpha,
			Beta:     m.Beta,
			D2:       m.D2,
			Shannon:  m.Shannon,
			Kullback: m.Kullback,
			Reliable: m.Reliable,
			Optimal:  marker(m.Radius, eAt, kAt),
		}
	}

	return out
}

// Rows concatenates ClassRows over every class.
func Rows(byClass [][]metrics.RadiusMetric) []Row {
	var out []Row
	for k, list := range byClass {
		out = append(out, ClassRows(k, list)...)
	}

	return out
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func zone(reliable bool) string {
	if reliable {
		return ZoneWorking
	}

	return ""
}

// WriteCSV writes the radius table of every class.
func WriteCSV(w io.Writer, byClass [][]metrics.RadiusMetric) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, r := range Rows(byClass) {
		rec := []string{
			strconv.Itoa(r.Class), strconv.Itoa(r.Radius),
			ftoa(r.D1), ftoa(r.Alpha), ftoa(r.Beta), ftoa(r.D2),
			ftoa(r.Shannon), ftoa(r.Kullback),
			zone(r.Reliable), r.Optimal,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
