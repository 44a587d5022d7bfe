package storage

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 that survives JSON. NaN and the infinities are written
// as the strings "NaN", "+Inf" and "-Inf", which is also what the CSV
// recording uses for them.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(v, 'g', -1, 64))), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch {
	case s == "null":
		*f = Float(math.NaN())
		return nil
	case len(s) > 0 && s[0] == '"':
		unq, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(unq, 64)
		if err != nil {
			return err
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func toFloats(vals []float64) []Float {
	out := make([]Float, len(vals))
	for i, v := range vals {
		out[i] = Float(v)
	}
	return out
}

func toFloatMap(m map[string]float64) map[string]Float {
	if m == nil {
		return nil
	}
	out := make(map[string]Float, len(m))
	for k, v := range m {
		out[k] = Float(v)
	}
	return out
}

func fromFloatMap(m map[string]Float) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = float64(v)
	}
	return out
}

type metadataAlias RunMetadata

type metadataJSON struct {
	metadataAlias
	Metrics map[string]Float `json:"metrics"`
}

// MarshalJSON keeps non-finite metrics, such as an energy that overflowed.
func (m RunMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(metadataJSON{
		metadataAlias: metadataAlias(m),
		Metrics:       toFloatMap(m.Metrics),
	})
}

func (m *RunMetadata) UnmarshalJSON(data []byte) error {
	var aux metadataJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = RunMetadata(aux.metadataAlias)
	m.Metrics = fromFloatMap(aux.Metrics)
	return nil
}
