package selection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawSource is one piece of per-product UI state encoding which options were
// chosen. Different controls persist their state in different native shapes
// (multi-select lists, radio groups, quantity steppers, toggle maps); the
// registry normalizes all of them into a flat id sequence without knowing the
// control's implementation. The type is sealed so ExtractIDs stays exhaustive.
type RawSource interface {
	isRawSource()
}

// IDList is an ordered sequence of ids. Empty entries are filtered out during
// extraction.
type IDList []string

// SingleID is one chosen id. The empty string means nothing is chosen.
type SingleID string

// NoteEntry associates an id with free-form text, e.g. a customer note.
type NoteEntry struct {
	ID   string
	Note string
}

// NoteRecord is an ordered id-to-note record. Every key counts as selected.
type NoteRecord []NoteEntry

// CountEntry associates an id with a chosen quantity.
type CountEntry struct {
	ID    string
	Count int
}

// CountRecord is an ordered id-to-count record. Only ids with a count above
// zero count as selected.
type CountRecord []CountEntry

// FlagEntry associates an id with a toggle state.
type FlagEntry struct {
	ID       string
	Selected bool
}

// FlagRecord is an ordered id-to-flag record. Only ids flagged true count as
// selected.
type FlagRecord []FlagEntry

func (IDList) isRawSource()      {}
func (SingleID) isRawSource()    {}
func (NoteRecord) isRawSource()  {}
func (CountRecord) isRawSource() {}
func (FlagRecord) isRawSource()  {}

// ExtractIDs returns the ordered sequence of selected ids for a raw source.
// A nil source yields no ids. The function is total; malformed entries are
// filtered, never reported.
func ExtractIDs(source RawSource) []string {
	var ids []string
	switch src := source.(type) {
	case nil:
		return nil
	case IDList:
		for _, id := range src {
			if id != "" {
				ids = append(ids, id)
			}
		}
	case SingleID:
		if src != "" {
			ids = append(ids, string(src))
		}
	case NoteRecord:
		for _, entry := range src {
			if entry.ID != "" {
				ids = append(ids, entry.ID)
			}
		}
	case CountRecord:
		for _, entry := range src {
			if entry.ID != "" && entry.Count > 0 {
				ids = append(ids, entry.ID)
			}
		}
	case FlagRecord:
		for _, entry := range src {
			if entry.ID != "" && entry.Selected {
				ids = append(ids, entry.ID)
			}
		}
	}
	return ids
}

// NamedSource carries a raw source together with the state key it was stored
// under. The key drives the fallback type and group-title heuristics.
type NamedSource struct {
	Key    string
	Source RawSource
}

// Raw source kinds accepted on the wire.
const (
	KindStringArray   = "stringArray"
	KindSingleString  = "singleString"
	KindStringRecord  = "stringRecord"
	KindNumberRecord  = "numberRecord"
	KindBooleanRecord = "booleanRecord"
)

type namedSourcePayload struct {
	Key   string          `json:"key"`
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes a {key, kind, value} payload into the matching raw
// source shape. Record values keep their document key order rather than
// relying on map iteration order. A null value decodes to an absent source.
func (s *NamedSource) UnmarshalJSON(data []byte) error {
	var payload namedSourcePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	s.Key = payload.Key
	s.Source = nil

	if len(payload.Value) == 0 || bytes.Equal(payload.Value, []byte("null")) {
		return nil
	}

	switch payload.Kind {
	case KindStringArray:
		var ids []string
		if err := json.Unmarshal(payload.Value, &ids); err != nil {
			return fmt.Errorf("invalid %s value for %q: %w", payload.Kind, payload.Key, err)
		}
		s.Source = IDList(ids)
	case KindSingleString:
		var id string
		if err := json.Unmarshal(payload.Value, &id); err != nil {
			return fmt.Errorf("invalid %s value for %q: %w", payload.Kind, payload.Key, err)
		}
		s.Source = SingleID(id)
	case KindStringRecord:
		var record NoteRecord
		err := decodeOrderedObject(payload.Value, func(key string, dec *json.Decoder) error {
			var note string
			if err := dec.Decode(&note); err != nil {
				return err
			}
			record = append(record, NoteEntry{ID: key, Note: note})
			return nil
		})
		if err != nil {
			return fmt.Errorf("invalid %s value for %q: %w", payload.Kind, payload.Key, err)
		}
		s.Source = record
	case KindNumberRecord:
		var record CountRecord
		err := decodeOrderedObject(payload.Value, func(key string, dec *json.Decoder) error {
			var count float64
			if err := dec.Decode(&count); err != nil {
				return err
			}
			record = append(record, CountEntry{ID: key, Count: int(count)})
			return nil
		})
		if err != nil {
			return fmt.Errorf("invalid %s value for %q: %w", payload.Kind, payload.Key, err)
		}
		s.Source = record
	case KindBooleanRecord:
		var record FlagRecord
		err := decodeOrderedObject(payload.Value, func(key string, dec *json.Decoder) error {
			var selected bool
			if err := dec.Decode(&selected); err != nil {
				return err
			}
			record = append(record, FlagEntry{ID: key, Selected: selected})
			return nil
		})
		if err != nil {
			return fmt.Errorf("invalid %s value for %q: %w", payload.Kind, payload.Key, err)
		}
		s.Source = record
	default:
		return fmt.Errorf("unknown raw source kind %q for %q", payload.Kind, payload.Key)
	}

	return nil
}

// decodeOrderedObject walks a JSON object's keys in document order, handing
// each value decoder to visit.
func decodeOrderedObject(raw json.RawMessage, visit func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := visit(key, dec); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
