package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldType is the closed set of editable value types. Preview building and
// argument building switch exhaustively on it.
type FieldType int

const (
	FieldPath FieldType = iota
	FieldEnum
	FieldBool
	FieldNum
)

func (t FieldType) String() string {
	switch t {
	case FieldPath:
		return "path"
	case FieldEnum:
		return "enum"
	case FieldBool:
		return "bool"
	case FieldNum:
		return "num"
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// ValueKind tags the representation actually held by a Value. It usually
// follows the field's type, except for the documented num fallback where a
// failed parse keeps the raw string.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindFloat
)

// Value is a small tagged variant: exactly one representation is active.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	i    int64
	f    float64
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value      { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value  { return Value{kind: KindFloat, f: f} }
func (v Value) Kind() ValueKind   { return v.kind }
func (v Value) Bool() bool        { return v.b }

// String renders the canonical text form, used for display, argv tokens and
// the persisted cache. CoerceValue(t, v.String()) round-trips for every kind.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.str
	}
}

var truthy = map[string]bool{"true": true, "1": true, "yes": true, "on": true}

// CoerceValue converts confirmed edit text into a typed value.
// bool: case-insensitive truthy set, anything else is false.
// num: integer parse first, then float; on total failure the raw string is
// kept (the field stays typed num while holding a string — accepted policy).
// path/enum: the raw string verbatim.
func CoerceValue(t FieldType, raw string) Value {
	switch t {
	case FieldBool:
		return BoolValue(truthy[strings.ToLower(raw)])
	case FieldNum:
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(i)
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
		return StringValue(raw)
	default:
		return StringValue(raw)
	}
}

// IsEmpty reports whether a value should be treated as absent by the argument
// builder. Booleans and numbers are never empty (false and 0 are real values);
// strings are empty when all-whitespace, and for path fields when they name
// nothing but the current or parent directory.
func (v Value) IsEmpty(t FieldType) bool {
	switch v.kind {
	case KindBool, KindInt, KindFloat:
		return false
	}
	s := strings.TrimSpace(v.str)
	if s == "" {
		return true
	}
	if t == FieldPath {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			return false // template placeholder, still meaningful
		}
		switch s {
		case ".", "..", "/", "\\":
			return true
		}
	}
	return false
}

// Field is one named, typed, editable configuration value. Identity is the
// ID; Name is display-only and also the key into a screen's flag mapping.
type Field struct {
	ID      int
	Name    string
	Type    FieldType
	Value   Value
	Default Value
	Options []string // enum only, declared order
}

// Binding scopes a field to a screen with a visibility flag.
type Binding struct {
	FieldID int
	Visible bool
}

// Screen is a named ordered set of bindings plus the launch plumbing for the
// worker it drives.
type Screen struct {
	ID       string
	Title    string
	Entry    string            // worker entry script, e.g. "inference.py"
	Bindings []Binding
	Flags    map[string]string // field name -> command-line flag
}

// ErrUnknownField is returned for lookups of ids the registry never loaded.
// Callers recover by returning to view mode; it is never fatal.
var ErrUnknownField = errors.New("unknown field id")

// ErrUnknownScreen is returned for screen ids outside the schema.
var ErrUnknownScreen = errors.New("unknown screen")

// Registry holds every field and screen for the life of the run. Fields are
// created at load time, mutated only on edit confirmation or import, and
// never destroyed.
type Registry struct {
	fields  map[int]*Field
	screens []*Screen
}

func NewRegistry(fields []*Field, screens []*Screen) *Registry {
	byID := make(map[int]*Field, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}
	return &Registry{fields: byID, screens: screens}
}

func (r *Registry) FieldByID(id int) (*Field, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, id)
	}
	return f, nil
}

func (r *Registry) Screen(id string) (*Screen, error) {
	for _, s := range r.screens {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, id)
}

func (r *Registry) Screens() []*Screen { return r.screens }

// VisibleFields returns the screen's fields shown in view mode: bindings with
// Visible set, or every binding when debug is on. Schema order is preserved.
func (r *Registry) VisibleFields(screenID string, debug bool) []*Field {
	s, err := r.Screen(screenID)
	if err != nil {
		return nil
	}
	out := make([]*Field, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if !b.Visible && !debug {
			continue
		}
		if f, ok := r.fields[b.FieldID]; ok {
			out = append(out, f)
		}
	}
	return out
}

// ScreenFields returns every bound field regardless of visibility, in schema
// order. The argument builder works from this list so hidden fields still
// reach the worker command line.
func (r *Registry) ScreenFields(screenID string) []*Field {
	s, err := r.Screen(screenID)
	if err != nil {
		return nil
	}
	out := make([]*Field, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if f, ok := r.fields[b.FieldID]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Hidden reports whether the field is bound invisibly on the given screen.
func (r *Registry) Hidden(screenID string, fieldID int) bool {
	s, err := r.Screen(screenID)
	if err != nil {
		return false
	}
	for _, b := range s.Bindings {
		if b.FieldID == fieldID {
			return !b.Visible
		}
	}
	return false
}

// ExportValues snapshots every field's current value in cache text form.
func (r *Registry) ExportValues() map[int]string {
	out := make(map[int]string, len(r.fields))
	for id, f := range r.fields {
		out[id] = f.Value.String()
	}
	return out
}

// ImportValues applies cached values to known fields, coercing each through
// the field's own type rules. Unknown ids are ignored. Returns the count
// applied.
func (r *Registry) ImportValues(values map[int]string) int {
	applied := 0
	for id, raw := range values {
		f, ok := r.fields[id]
		if !ok {
			continue
		}
		f.Value = CoerceValue(f.Type, raw)
		applied++
	}
	return applied
}
