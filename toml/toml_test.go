package toml

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParse_Document(t *testing.T) {
	input := []byte(`
# scenario header
name = "cloth"   # trailing comment
steps = 2
ratio = 1_000.5
hex = 0xff
neg = -3
big = 6.02e23
on = true
"quoted key" = 'C:\raw'

[physics]
dt = 0.05
mode = "euler"
nested.depth = 1

[[link]]
a = 0
b = 1

[[link]]
a = 1
b = 2
tags = [
  "x", # first
  "y",
]
inline = { k = 1, s = "v" }
`)

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	checks := map[string]any{
		"name":       "cloth",
		"steps":      int64(2),
		"ratio":      1000.5,
		"hex":        int64(255),
		"neg":        int64(-3),
		"big":        6.02e23,
		"on":         true,
		"quoted key": `C:\raw`,
	}
	for k, want := range checks {
		if got := doc[k]; got != want {
			t.Errorf("%s: expected %v (%T), got %v (%T)", k, want, want, got, got)
		}
	}

	phys := doc["physics"].(map[string]any)
	if phys["dt"] != 0.05 || phys["mode"] != "euler" {
		t.Errorf("Unexpected physics table %v", phys)
	}
	if phys["nested"].(map[string]any)["depth"] != int64(1) {
		t.Errorf("Expected dotted key to create nested table, got %v", phys["nested"])
	}

	links := doc["link"].([]map[string]any)
	if len(links) != 2 || links[1]["b"] != int64(2) {
		t.Fatalf("Unexpected link array %v", links)
	}
	if tags := links[1]["tags"].([]any); len(tags) != 2 || tags[1] != "y" {
		t.Errorf("Unexpected multi-line array %v", tags)
	}
	if inline := links[1]["inline"].(map[string]any); inline["s"] != "v" {
		t.Errorf("Unexpected inline table %v", inline)
	}
}

func TestParse_SpecialFloatsAndEscapes(t *testing.T) {
	doc, err := Parse([]byte("a = inf\nb = -inf\nc = nan\ns = \"tab\\there \\u00e9\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !math.IsInf(doc["a"].(float64), 1) || !math.IsInf(doc["b"].(float64), -1) || !math.IsNaN(doc["c"].(float64)) {
		t.Errorf("Unexpected special floats %v %v %v", doc["a"], doc["b"], doc["c"])
	}
	if doc["s"] != "tab\there é" {
		t.Errorf("Unexpected escaped string %q", doc["s"])
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"duplicate key":    "a = 1\na = 2\n",
		"duplicate table":  "[t]\n[t]\n",
		"missing equals":   "a 1\n",
		"unterminated":     "a = \"open\n",
		"bad number":       "a = 1.2.3\n",
		"leading zero":     "a = 012\n",
		"underscore":       "a = 1__0\n",
		"junk after value": "a = 1 b\n",
		"table over value": "a = 1\n[a]\n",
		"bad escape":       "a = \"\\q\"\n",
		"unclosed array":   "a = [1, 2\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Expected ErrSyntax, got %v", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) || se.Line < 1 {
				t.Errorf("Expected located SyntaxError, got %v", err)
			}
		})
	}
}

func TestParse_ErrorLocation(t *testing.T) {
	_, err := Parse([]byte("a = 1\nb = 2\nc = ?\n"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SyntaxError, got %v", err)
	}
	if se.Line != 3 {
		t.Errorf("Expected line 3, got %d", se.Line)
	}
}

func TestParse_ArrayTableScopes(t *testing.T) {
	input := []byte(`
[[item]]
name = "a"
[item.detail]
x = 1

[[item]]
name = "b"
[item.detail]
x = 2
`)
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	items := doc["item"].([]map[string]any)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[1]["detail"].(map[string]any)["x"] != int64(2) {
		t.Errorf("Expected sub-table to attach to last element, got %v", items[1])
	}
}

type decodeTarget struct {
	Name    string             `toml:"name"`
	Count   int                `toml:"count"`
	Scale   float64            `toml:"scale"`
	Small   uint8              `toml:"small"`
	Enabled bool               `toml:"enabled"`
	Values  []float64          `toml:"values"`
	Inner   decodeInner        `toml:"inner"`
	Items   []decodeInner      `toml:"item"`
	Extra   map[string]float64 `toml:"extra"`
	Opt     *decodeInner       `toml:"opt"`
	Skipped int                `toml:"-"`
}

type decodeInner struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

func TestUnmarshal_Struct(t *testing.T) {
	input := []byte(`
name = "web"
count = 3.0
scale = 2
small = 200
enabled = true
values = [1, 2.5]

[inner]
x = 1.5

[extra]
k = 4

[opt]
y = -1.0

[[item]]
x = 1.0
[[item]]
y = 2.0
`)
	var got decodeTarget
	if err := Unmarshal(input, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := decodeTarget{
		Name:    "web",
		Count:   3,
		Scale:   2,
		Small:   200,
		Enabled: true,
		Values:  []float64{1, 2.5},
		Inner:   decodeInner{X: 1.5},
		Items:   []decodeInner{{X: 1}, {Y: 2}},
		Extra:   map[string]float64{"k": 4},
		Opt:     &decodeInner{Y: -1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Mismatch:\nGot:  %+v\nWant: %+v", got, want)
	}
}

func TestUnmarshal_UnknownKeys(t *testing.T) {
	input := []byte(`
name = "x"
colour = "red"
[inner]
z = 1
`)
	var got decodeTarget
	err := Unmarshal(input, &got)

	var uk *UnknownKeysError
	if !errors.As(err, &uk) {
		t.Fatalf("Expected UnknownKeysError, got %v", err)
	}
	if !reflect.DeepEqual(uk.Keys, []string{"colour", "inner.z"}) {
		t.Errorf("Unexpected unknown keys %v", uk.Keys)
	}
	if !errors.Is(err, ErrDecode) {
		t.Error("Expected UnknownKeysError to wrap ErrDecode")
	}
	// Known keys are still applied
	if got.Name != "x" {
		t.Errorf("Expected name decoded despite unknown keys, got %q", got.Name)
	}
}

func TestUnmarshal_TypeErrors(t *testing.T) {
	cases := map[string]string{
		"string into int":   `count = "3"`,
		"fraction into int": `count = 2.5`,
		"overflow":          `small = 300`,
		"negative uint":     `small = -1`,
		"scalar into table": `inner = 1`,
		"int into bool":     `enabled = 1`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var got decodeTarget
			if err := Unmarshal([]byte(input), &got); !errors.Is(err, ErrDecode) {
				t.Errorf("Expected ErrDecode, got %v", err)
			}
		})
	}

	if err := Decode(map[string]any{}, decodeTarget{}); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected non-pointer target rejected, got %v", err)
	}
}
