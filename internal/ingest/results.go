package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/daryltucker/euroeval-report/internal/model"
)

// The harness is written in Python, whose json module emits bare NaN and
// Infinity literals. quoteNonFinite rewrites them as strings outside of string
// literals so encoding/json accepts the line.
func quoteNonFinite(line []byte) []byte {
	if !bytes.Contains(line, []byte("NaN")) && !bytes.Contains(line, []byte("Infinity")) {
		return line
	}

	out := make([]byte, 0, len(line)+8)
	inString := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inString {
			out = append(out, c)
			switch c {
			case '\\':
				if i+1 < len(line) {
					i++
					out = append(out, line[i])
				}
			case '"':
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case bytes.HasPrefix(line[i:], []byte("NaN")):
			out = append(out, `"NaN"`...)
			i += len("NaN") - 1
		case bytes.HasPrefix(line[i:], []byte("-Infinity")):
			out = append(out, `"-Infinity"`...)
			i += len("-Infinity") - 1
		case bytes.HasPrefix(line[i:], []byte("Infinity")):
			out = append(out, `"Infinity"`...)
			i += len("Infinity") - 1
		default:
			out = append(out, c)
		}
	}
	return out
}

type member struct {
	Key   string
	Value json.RawMessage
}

// objectMembers decodes a JSON object keeping its key order.
func objectMembers(raw json.RawMessage) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		members = append(members, member{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// decodeResults resolves the two shapes of `results`: an entry with its own
// raw/total keys, or a mapping from configuration id to such an entry.
func decodeResults(raw json.RawMessage) (model.Results, error) {
	members, err := objectMembers(raw)
	if err != nil {
		return model.Results{}, fmt.Errorf("results: %w", err)
	}

	if len(members) == 0 || hasEntryKeys(members) {
		entry, err := decodeEntry(members)
		if err != nil {
			return model.Results{}, fmt.Errorf("results: %w", err)
		}
		return model.Results{Kind: model.ResultsSingle, Single: &entry}, nil
	}

	res := model.Results{Kind: model.ResultsMulti}
	for _, m := range members {
		sub, err := objectMembers(m.Value)
		if err != nil {
			return model.Results{}, fmt.Errorf("results[%s]: %w", m.Key, err)
		}
		entry, err := decodeEntry(sub)
		if err != nil {
			return model.Results{}, fmt.Errorf("results[%s]: %w", m.Key, err)
		}
		res.Configs = append(res.Configs, model.ConfigEntry{ID: m.Key, Entry: entry})
	}
	return res, nil
}

func hasEntryKeys(members []member) bool {
	for _, m := range members {
		if m.Key == "total" || m.Key == "raw" {
			return true
		}
	}
	return false
}

func decodeEntry(members []member) (model.ResultEntry, error) {
	var entry model.ResultEntry
	for _, m := range members {
		switch m.Key {
		case "total":
			total, err := decodeTotal(m.Value)
			if err != nil {
				return entry, fmt.Errorf("total: %w", err)
			}
			entry.Total = total
		case "raw":
			raw, err := decodeRaw(m.Value)
			if err != nil {
				return entry, fmt.Errorf("raw: %w", err)
			}
			entry.Raw = raw
		}
	}
	return entry, nil
}

func decodeTotal(raw json.RawMessage) (model.Total, error) {
	members, err := objectMembers(raw)
	if err != nil {
		return nil, err
	}
	total := make(model.Total, 0, len(members))
	for _, m := range members {
		var v any
		if err := json.Unmarshal(m.Value, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", m.Key, err)
		}
		f, present, err := metricValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Key, err)
		}
		metric := model.Metric{Name: m.Key}
		if present {
			metric.Value = &f
		}
		total = append(total, metric)
	}
	return total, nil
}

// decodeRaw keeps the numeric scores of each example; other values are dropped.
func decodeRaw(raw json.RawMessage) ([]map[string]float64, error) {
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	out := make([]map[string]float64, 0, len(rows))
	for _, row := range rows {
		scores := make(map[string]float64, len(row))
		for k, v := range row {
			if f, ok, err := metricValue(v); err == nil && ok {
				scores[k] = f
			}
		}
		out = append(out, scores)
	}
	return out, nil
}

func metricValue(v any) (float64, bool, error) {
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return x, true, nil
	case string:
		switch x {
		case "NaN":
			return math.NaN(), true, nil
		case "Infinity", "-Infinity":
			f, _ := strconv.ParseFloat(x, 64)
			return f, true, nil
		}
		return 0, false, fmt.Errorf("unsupported metric value %q", x)
	default:
		return 0, false, fmt.Errorf("unsupported metric value of type %T", v)
	}
}
