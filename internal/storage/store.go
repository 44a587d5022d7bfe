package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Particles  int                `json:"particles"`
	TickMs     float64            `json:"tick_ms"`
	Ticks      int                `json:"ticks"`
	Mass       float64            `json:"mass"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Integrator string             `json:"integrator"`
	Preset     string             `json:"preset,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes meta and rec into a fresh run directory and returns its id.
// meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, rec *Recording) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("run_%s_%d", now.Format("20060102_150405"), now.UnixNano()%1e6)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, rec); err != nil {
		return "", fmt.Errorf("write states: %w", err)
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadStates(runID string) (*Recording, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rec := &Recording{}
	if len(records) < 2 {
		return rec, nil
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		frame, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			continue
		}

		state := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}
		rec.Frames = append(rec.Frames, frame)
		rec.States = append(rec.States, state)
	}

	return rec, nil
}
