package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/brownsim/internal/physics"
)

func sampleRecording() *Recording {
	r := NewRecorder(1)
	a := physics.NewParticle(400, 300)
	b := physics.NewParticle(400, 300)
	for frame := uint64(1); frame <= 3; frame++ {
		a.SetForce(1, 0)
		a.Step(10)
		b.SetForce(0, -2)
		b.Step(10)
		r.OnTick(frame, []physics.Particle{*a, *b})
	}
	return r.Recording()
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	rec := sampleRecording()
	runID, err := st.Save(RunMetadata{
		Seed:       42,
		Particles:  2,
		TickMs:     10,
		Ticks:      3,
		Mass:       1,
		Integrator: "impulse",
		Metrics:    map[string]float64{"kinetic_energy": 1.5},
	}, rec)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID || meta.Seed != 42 || meta.Integrator != "impulse" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["kinetic_energy"] != 1.5 {
		t.Errorf("expected energy 1.5, got %f", meta.Metrics["kinetic_energy"])
	}

	loaded, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if loaded.Len() != 3 || loaded.Particles() != 2 {
		t.Fatalf("expected 3 rows of 2 particles, got %d rows of %d", loaded.Len(), loaded.Particles())
	}
	if loaded.Frames[2] != 3 {
		t.Errorf("last frame = %d, want 3", loaded.Frames[2])
	}
	vy := loaded.Series(1, 3)
	if len(vy) != 3 || vy[2] != -6 {
		t.Errorf("vy1 series = %v", vy)
	}

	runs, err := st.List()
	if err != nil || len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("List = %v, %v", runs, err)
	}
}

func TestListMissingDir(t *testing.T) {
	runs, err := New(t.TempDir() + "/nope").List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestRecorderStride(t *testing.T) {
	r := NewRecorder(5)
	p := physics.NewParticle(0, 0)
	for frame := uint64(1); frame <= 12; frame++ {
		r.OnTick(frame, []physics.Particle{*p})
	}

	rec := r.Recording()
	if rec.Len() != 2 || rec.Frames[0] != 5 || rec.Frames[1] != 10 {
		t.Errorf("frames = %v, want [5 10]", rec.Frames)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecording()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "frame,x0,y0,vx0,vy0,x1,y1,vx1,vy1" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,400.010000,300.000000,1.000000,0.000000,") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := &RunMetadata{ID: "run_x", Integrator: "impulse", TickMs: 10}
	if err := ExportJSON(&buf, meta, sampleRecording()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.ID != "run_x" || data.Steps != 3 || data.Particles != 2 {
		t.Errorf("export mismatch: %+v", data)
	}
}

func nonFiniteRecording() *Recording {
	return &Recording{
		Frames: []uint64{1, 2},
		States: [][]float64{
			{math.NaN(), 0, math.Inf(1), 0},
			{1, math.Inf(-1), 2, 3},
		},
	}
}

func TestSaveNonFinite(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{
		Particles:  1,
		Integrator: "impulse",
		Metrics: map[string]float64{
			"kinetic_energy": math.Inf(1),
			"spread":         math.NaN(),
			"max_speed":      math.Inf(-1),
			"containment":    0.5,
		},
	}, nonFiniteRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !math.IsInf(meta.Metrics["kinetic_energy"], 1) {
		t.Errorf("kinetic_energy = %v, want +Inf", meta.Metrics["kinetic_energy"])
	}
	if !math.IsNaN(meta.Metrics["spread"]) {
		t.Errorf("spread = %v, want NaN", meta.Metrics["spread"])
	}
	if !math.IsInf(meta.Metrics["max_speed"], -1) {
		t.Errorf("max_speed = %v, want -Inf", meta.Metrics["max_speed"])
	}
	if meta.Metrics["containment"] != 0.5 || meta.Integrator != "impulse" || meta.ID != runID {
		t.Errorf("metadata mismatch: %+v", meta)
	}

	rec, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if rec.Len() != 2 || !math.IsNaN(rec.States[0][0]) || !math.IsInf(rec.States[0][2], 1) || !math.IsInf(rec.States[1][1], -1) {
		t.Errorf("states = %v", rec.States)
	}
}

func TestExportJSONNonFinite(t *testing.T) {
	var buf bytes.Buffer
	meta := &RunMetadata{ID: "run_nan", Metrics: map[string]float64{"kinetic_energy": math.Inf(1)}}
	if err := ExportJSON(&buf, meta, nonFiniteRecording()); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"NaN"`) || !strings.Contains(buf.String(), `"+Inf"`) || !strings.Contains(buf.String(), `"-Inf"`) {
		t.Errorf("non-finite values not written as strings:\n%s", buf.String())
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !math.IsNaN(float64(data.States[0][0])) || !math.IsInf(float64(data.States[0][2]), 1) {
		t.Errorf("states = %v", data.States)
	}
	if !math.IsInf(float64(data.Metrics["kinetic_energy"]), 1) {
		t.Errorf("kinetic_energy = %v", data.Metrics["kinetic_energy"])
	}
}

func TestFloatJSON(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`1.5`, 1.5},
		{`"+Inf"`, math.Inf(1)},
		{`"-Inf"`, math.Inf(-1)},
	}
	for _, tt := range tests {
		var f Float
		if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if float64(f) != tt.want {
			t.Errorf("unmarshal %s = %v, want %v", tt.in, f, tt.want)
		}
	}

	var f Float
	if err := json.Unmarshal([]byte(`null`), &f); err != nil || !math.IsNaN(float64(f)) {
		t.Errorf("null = %v, %v; want NaN", f, err)
	}
	out, err := json.Marshal(Float(math.NaN()))
	if err != nil || string(out) != `"NaN"` {
		t.Errorf("marshal NaN = %s, %v", out, err)
	}
}
