package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

type ExportData struct {
	ID         string           `json:"id"`
	Integrator string           `json:"integrator"`
	TickMs     float64          `json:"tick_ms"`
	Particles  int              `json:"particles"`
	Steps      int              `json:"steps"`
	Frames     []uint64         `json:"frames"`
	States     [][]Float        `json:"states"`
	Metrics    map[string]Float `json:"metrics"`
}

// ExportJSON writes meta and rec as one indented document. Non-finite
// values are written as strings; see Float.
func ExportJSON(w io.Writer, meta *RunMetadata, rec *Recording) error {
	states := make([][]Float, len(rec.States))
	for i, s := range rec.States {
		states[i] = toFloats(s)
	}
	data := ExportData{
		ID:         meta.ID,
		Integrator: meta.Integrator,
		TickMs:     meta.TickMs,
		Particles:  rec.Particles(),
		Steps:      rec.Len(),
		Frames:     rec.Frames,
		States:     states,
		Metrics:    toFloatMap(meta.Metrics),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes a header of frame, x0, y0, vx0, vy0, ... followed by one
// row per recorded tick.
func WriteCSV(out io.Writer, rec *Recording) error {
	w := csv.NewWriter(out)

	header := []string{"frame"}
	for i := 0; i < rec.Particles(); i++ {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range rec.States {
		row := []string{strconv.FormatUint(rec.Frames[i], 10)}
		for _, val := range rec.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
