package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the text encoding of a snapshot.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes v in the given format. Reals inside records are always written
// with a fraction or an explicit float tag, so integral reals decode as float64.
func Encode(format Format, v any) ([]byte, error) {
	v = markReals(v)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Decode reads a top-level mapping in the given format and normalizes it.
func Decode(format Format, b []byte) (Record, error) {
	var raw any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(bytes.NewReader(b)).Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return Mapping(Normalize(raw))
}

// Fingerprint hashes the canonical JSON form of v. Map keys are sorted by the
// encoder, so equal records always hash the same.
func Fingerprint(v any) (uint64, error) {
	b, err := json.Marshal(markReals(v))
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}

// realNumber is a float64 that never encodes as an integer literal.
type realNumber float64

func (r realNumber) literal() string {
	s := strconv.FormatFloat(float64(r), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (r realNumber) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(r), 0) || math.IsNaN(float64(r)) {
		return json.Marshal(float64(r))
	}
	return []byte(r.literal()), nil
}

func (r realNumber) MarshalYAML() (any, error) {
	if math.IsInf(float64(r), 0) || math.IsNaN(float64(r)) {
		return float64(r), nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: r.literal()}, nil
}

// markReals copies the record tree in v, wrapping every real in realNumber.
// Values of other types are returned as is.
func markReals(v any) any {
	switch val := v.(type) {
	case float64:
		return realNumber(val)
	case float32:
		return realNumber(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = markReals(item)
		}
		return out
	case map[string]Record:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = markReals(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = markReals(item)
		}
		return out
	default:
		return v
	}
}
