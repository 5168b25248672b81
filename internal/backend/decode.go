package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"codesearch/internal/domain"
)

// entry is one member of a keyed collection, in document order
type entry struct {
	key   string
	value json.RawMessage
}

// decodeCollection reads either a JSON object or a JSON array into entries.
// Object members keep their document order unless every key is an integer,
// in which case they are ordered by that integer.
func decodeCollection(data []byte) ([]entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var entries []entry
	switch tok {
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
			}
			key, _ := keyTok.(string)
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("%w: member %q: %v", ErrMalformedPayload, key, err)
			}
			entries = append(entries, entry{key: key, value: raw})
		}
		sortNumericKeys(entries)
	case json.Delim('['):
		for i := 0; dec.More(); i++ {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("%w: element %d: %v", ErrMalformedPayload, i, err)
			}
			entries = append(entries, entry{key: strconv.Itoa(i), value: raw})
		}
	default:
		return nil, fmt.Errorf("%w: expected object or array, got %v", ErrMalformedPayload, tok)
	}

	// closing delimiter, then nothing else
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedPayload)
	}
	return entries, nil
}

func sortNumericKeys(entries []entry) {
	keys := make([]int, len(entries))
	for i, e := range entries {
		n, err := strconv.Atoi(e.key)
		if err != nil {
			return
		}
		keys[i] = n
	}
	sort.Stable(byKey{entries: entries, keys: keys})
}

type byKey struct {
	entries []entry
	keys    []int
}

func (b byKey) Len() int           { return len(b.entries) }
func (b byKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byKey) Swap(i, j int) {
	b.entries[i], b.entries[j] = b.entries[j], b.entries[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// decodeProjects turns the GET / payload into project identifiers
func decodeProjects(data []byte) ([]string, error) {
	entries, err := decodeCollection(data)
	if err != nil {
		return nil, err
	}
	projects := make([]string, 0, len(entries))
	for _, e := range entries {
		var id string
		if err := json.Unmarshal(e.value, &id); err != nil {
			return nil, fmt.Errorf("%w: project %q is not a string", ErrMalformedPayload, e.key)
		}
		projects = append(projects, id)
	}
	return projects, nil
}

// wireMatch mirrors one search hit on the wire. line_number is accepted as a
// number or a numeric string.
type wireMatch struct {
	ClassName    *string         `json:"class_name"`
	FunctionName *string         `json:"function_name"`
	FilePath     *string         `json:"filepath"`
	LineNumber   json.RawMessage `json:"line_number"`
}

// decodeMatches turns the POST /search payload into matches in rank order
func decodeMatches(data []byte) ([]domain.Match, error) {
	entries, err := decodeCollection(data)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Match, 0, len(entries))
	for _, e := range entries {
		var w wireMatch
		if err := json.Unmarshal(e.value, &w); err != nil {
			return nil, fmt.Errorf("%w: match %q: %v", ErrMalformedPayload, e.key, err)
		}
		if w.FunctionName == nil || w.FilePath == nil {
			return nil, fmt.Errorf("%w: match %q: missing function_name or filepath", ErrMalformedPayload, e.key)
		}
		line, err := parseLine(w.LineNumber)
		if err != nil {
			return nil, fmt.Errorf("%w: match %q: %v", ErrMalformedPayload, e.key, err)
		}
		m := domain.Match{
			FunctionName: *w.FunctionName,
			FilePath:     *w.FilePath,
			LineNumber:   line,
		}
		if w.ClassName != nil {
			m.ClassName = *w.ClassName
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func parseLine(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errors.New("missing line_number")
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("line_number %s is not an integer", raw)
		}
		if n, err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return 0, fmt.Errorf("line_number %q is not an integer", s)
		}
	}
	if n < 1 {
		return 0, fmt.Errorf("line_number %d < 1", n)
	}
	return n, nil
}
