package state

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-orient/internal/astro"
	"github.com/litescript/ls-orient/internal/wgccre"
)

// SnapshotExport is the JSON-serializable representation of a snapshot.
type SnapshotExport struct {
	Epoch            time.Time    `json:"epoch"`
	JulianCenturies  float64      `json:"julian_centuries"`
	AxialTiltDeg     float64      `json:"earth_axial_tilt_deg"`
	MeanObliquityDeg float64      `json:"mean_obliquity_deg"`
	Bodies           []BodyExport `json:"bodies"`
}

// BodyExport is a JSON-friendly body orientation.
type BodyExport struct {
	Name       string     `json:"name"`
	Report     string     `json:"report"`
	AlphaDeg   float64    `json:"alpha_deg"`
	DeltaDeg   float64    `json:"delta_deg"`
	WDeg       float64    `json:"w_deg"`
	VSOP87     [3]float64 `json:"vsop87"`
	PoleEclLat float64    `json:"pole_ecliptic_lat_deg"`
	PoleEclLon float64    `json:"pole_ecliptic_lon_deg"`
	TiltDeg    float64    `json:"tilt_deg"`
}

// ExportSnapshot converts a snapshot to an exportable format. With no
// bodies given every body in the snapshot is exported.
func ExportSnapshot(s Snapshot, only ...wgccre.Body) *SnapshotExport {
	export := &SnapshotExport{
		Epoch:            s.Epoch,
		JulianCenturies:  s.Centuries,
		AxialTiltDeg:     wgccre.EarthAxialTiltDeg,
		MeanObliquityDeg: s.MeanObliquity.Deg(),
	}

	for _, b := range selectBodies(s, only) {
		export.Bodies = append(export.Bodies, BodyExport{
			Name:       b.Body.String(),
			Report:     b.Report.String(),
			AlphaDeg:   b.Raw.Alpha,
			DeltaDeg:   b.Raw.Delta,
			WDeg:       b.Raw.W,
			VSOP87:     b.Frame.Array(),
			PoleEclLat: b.PoleLat,
			PoleEclLon: b.PoleLon,
			TiltDeg:    b.Tilt,
		})
	}
	return export
}

func selectBodies(s Snapshot, only []wgccre.Body) []BodyState {
	if len(only) == 0 {
		return s.Bodies
	}
	var out []BodyState
	for _, b := range only {
		if bs := s.Body(b); bs != nil {
			out = append(out, *bs)
		}
	}
	return out
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	Body   string
	Report string
	Alpha  float64
	Delta  float64
	W      float64 // reduced to [0, 360)
	Lat    float64
	Lon    float64
}

// GenerateSummaryRows creates summary rows from a snapshot.
func GenerateSummaryRows(s Snapshot, only ...wgccre.Body) []SummaryRow {
	var rows []SummaryRow
	for _, b := range selectBodies(s, only) {
		rows = append(rows, SummaryRow{
			Body:   b.Body.String(),
			Report: b.Report.String(),
			Alpha:  b.Raw.Alpha,
			Delta:  b.Raw.Delta,
			W:      astro.NormalizeAngle360(b.Raw.W),
			Lat:    b.Frame.Lat,
			Lon:    b.Frame.Lon,
		})
	}
	return rows
}

// WriteSummaryTable writes a text table to the given writer.
func WriteSummaryTable(w io.Writer, s Snapshot, only ...wgccre.Body) {
	rows := GenerateSummaryRows(s, only...)

	fmt.Fprintf(w, "Orientation @ %s (T = %+.9f)\n", s.Epoch.Format(time.RFC3339), s.Centuries)
	fmt.Fprintf(w, "Axial tilt %s, mean obliquity %s\n",
		astro.FormatAngle(wgccre.EarthAxialTiltDeg), astro.FormatAngle(s.MeanObliquity.Deg()))
	fmt.Fprintln(w, strings.Repeat("─", 86))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No bodies")
		return
	}

	fmt.Fprintf(w, "%-8s %-12s %11s %11s %11s %11s %11s\n",
		"Body", "Report", "α", "δ", "W", "Lat", "Lon")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, r := range rows {
		fmt.Fprintf(w, "%-8s %-12s %11.6f %11.6f %11.6f %11.6f %11.6f\n",
			r.Body, r.Report, r.Alpha, r.Delta, r.W, r.Lat, r.Lon)
	}
}

// WriteEpochTable writes the constant terms of every model.
func WriteEpochTable(w io.Writer) {
	fmt.Fprintf(w, "%-8s %-12s %11s %11s %11s\n", "Body", "Report", "α0", "δ0", "W0")
	fmt.Fprintln(w, strings.Repeat("─", 58))
	for _, b := range wgccre.Bodies() {
		o, err := wgccre.AtEpoch(b)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-8s %-12s %11.6f %11.6f %11.6f\n", b, b.Report(), o.Alpha, o.Delta, o.W)
	}
}
