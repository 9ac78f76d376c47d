package core

import "testing"

func TestCoerceValueBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "TRUE": true, "1": true, "yes": true, "on": true,
		"false": false, "0": false, "no": false, "": false, "junk": false,
	}
	for raw, want := range cases {
		v := CoerceValue(FieldBool, raw)
		if v.Kind() != KindBool || v.Bool() != want {
			t.Errorf("CoerceValue(bool, %q) = %v, want %v", raw, v.Bool(), want)
		}
	}
}

func TestCoerceValueNum(t *testing.T) {
	if v := CoerceValue(FieldNum, "42"); v.Kind() != KindInt || v.String() != "42" {
		t.Fatalf("int parse: got kind %d %q", v.Kind(), v.String())
	}
	if v := CoerceValue(FieldNum, "0.5"); v.Kind() != KindFloat || v.String() != "0.5" {
		t.Fatalf("float parse: got kind %d %q", v.Kind(), v.String())
	}
	// Failed parses keep the raw string so nothing typed is ever lost.
	if v := CoerceValue(FieldNum, "fast"); v.Kind() != KindString || v.String() != "fast" {
		t.Fatalf("fallback: got kind %d %q", v.Kind(), v.String())
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	cases := []struct {
		t   FieldType
		raw string
	}{
		{FieldBool, "true"},
		{FieldBool, "false"},
		{FieldNum, "8"},
		{FieldNum, "0.25"},
		{FieldPath, "./output"},
		{FieldEnum, "mdx23c"},
	}
	for _, c := range cases {
		v := CoerceValue(c.t, c.raw)
		again := CoerceValue(c.t, v.String())
		if again.String() != v.String() {
			t.Errorf("round trip %q (%s): %q != %q", c.raw, c.t, again.String(), v.String())
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !StringValue("  ").IsEmpty(FieldPath) {
		t.Error("whitespace path should be empty")
	}
	for _, s := range []string{".", "..", "/", "\\"} {
		if !StringValue(s).IsEmpty(FieldPath) {
			t.Errorf("%q should be empty as a path", s)
		}
	}
	if StringValue(".").IsEmpty(FieldEnum) {
		t.Error("'.' is a real enum value")
	}
	if StringValue("{stem}").IsEmpty(FieldPath) {
		t.Error("template placeholder should not be empty")
	}
	// false and 0 are real values, never skipped.
	if BoolValue(false).IsEmpty(FieldBool) {
		t.Error("bool false should not be empty")
	}
	if IntValue(0).IsEmpty(FieldNum) {
		t.Error("num 0 should not be empty")
	}
}

func TestRegistryVisibility(t *testing.T) {
	r := DefaultRegistry()

	vis := r.VisibleFields(ScreenInference, false)
	all := r.VisibleFields(ScreenInference, true)
	if len(all) <= len(vis) {
		t.Fatalf("debug should reveal hidden fields: %d vs %d", len(all), len(vis))
	}
	for _, f := range vis {
		if r.Hidden(ScreenInference, f.ID) {
			t.Errorf("field %d visible but marked hidden", f.ID)
		}
	}
	if !r.Hidden(ScreenInference, 8) {
		t.Error("verbose should be hidden on inference")
	}

	// Builder input includes hidden fields regardless of debug.
	if got := len(r.ScreenFields(ScreenInference)); got != len(all) {
		t.Errorf("ScreenFields = %d fields, want %d", got, len(all))
	}
}

func TestRegistryImportValues(t *testing.T) {
	r := DefaultRegistry()
	n := r.ImportValues(map[int]string{
		0:    "htdemucs",
		7:    "true",
		106:  "16",
		9999: "ignored",
	})
	if n != 3 {
		t.Fatalf("applied %d, want 3", n)
	}
	f, err := r.FieldByID(7)
	if err != nil {
		t.Fatal(err)
	}
	if f.Value.Kind() != KindBool || !f.Value.Bool() {
		t.Errorf("imported bool not coerced: %v", f.Value)
	}
	f, _ = r.FieldByID(106)
	if f.Value.Kind() != KindInt || f.Value.String() != "16" {
		t.Errorf("imported num not coerced: %v", f.Value)
	}
}

func TestRegistryUnknownLookups(t *testing.T) {
	r := DefaultRegistry()
	if _, err := r.FieldByID(12345); err == nil {
		t.Error("expected error for unknown field id")
	}
	if _, err := r.Screen("nope"); err == nil {
		t.Error("expected error for unknown screen")
	}
	if fields := r.VisibleFields("nope", true); fields != nil {
		t.Errorf("unknown screen should yield nil, got %d fields", len(fields))
	}
}
