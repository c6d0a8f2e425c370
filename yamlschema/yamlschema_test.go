package yamlschema_test

import (
	"context"
	"strings"
	"testing"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/yamlschema"
)

const movieDef = `
type: object
fields:
  - name: title
    type: string
    rules: [nonempty]
  - name: year
    type: number
    optional: true
    rules: [integer, "min=1900"]
  - name: genres
    type: array
    items:
      type: string
      rules: ["oneof=drama|scifi"]
`

func TestLoad_Notation(t *testing.T) {
	s, err := yamlschema.Load([]byte(movieDef))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "{ title: string /* non-empty */, year: number /* whole number, n >= 1900, optional */, genres: [string /* one of 'drama', 'scifi' */] }"
	if got := s.Stringify(); got != want {
		t.Fatalf("unexpected notation:\n got %q\nwant %q", got, want)
	}
}

func TestLoad_ParseOkAndFail(t *testing.T) {
	ctx := context.Background()
	s, err := yamlschema.Load([]byte(movieDef))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	v, err := s.Parse(ctx, []byte(`{"title":"Dune","year":1965,"genres":["scifi"]}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, _ := v.(map[string]any)
	if m["title"] != "Dune" || m["year"] != float64(1965) {
		t.Fatalf("unexpected value: %#v", v)
	}

	// optional field may be absent
	if _, err := s.Parse(ctx, []byte(`{"title":"Dune","genres":[]}`)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// composed rules fail as one validator
	_, err = s.Parse(ctx, []byte(`{"title":"Dune","year":1850,"genres":[]}`))
	iss, ok := goshape.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	if iss[0].Code != goshape.CodeValidationFailed || iss[0].Path != "/year" {
		t.Fatalf("expected validation_failed at /year, got %v", iss)
	}

	// element rules keep their index
	_, err = s.Parse(ctx, []byte(`{"title":"Dune","genres":["drama","western"]}`))
	iss, _ = goshape.AsIssues(err)
	if len(iss) == 0 || iss[0].Path != "/genres/1" {
		t.Fatalf("expected issue at /genres/1, got %v", err)
	}
}

func TestLoad_ExplicitLabelOverridesRuleText(t *testing.T) {
	def := []byte(`
type: number
label: a probability
rules: ["min=0", "max=1"]
`)
	s, err := yamlschema.Load(def)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := s.Stringify(); got != "number /* a probability */" {
		t.Fatalf("unexpected notation: %q", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		def  string
		want string
	}{
		{"missing type", `fields: []`, "missing type"},
		{"unknown type", `type: uuid`, "unknown type"},
		{"array without items", `type: array`, "array requires items"},
		{"unknown rule", "type: string\nrules: [short]", "unknown string rule"},
		{"bad rule value", "type: number\nrules: [\"min=abc\"]", "bad value"},
		{"duplicate field", "type: object\nfields:\n  - name: a\n    type: string\n  - name: a\n    type: number", "duplicate field"},
		{"nameless field", "type: object\nfields:\n  - type: string", "field without a name"},
	}
	for _, tc := range cases {
		_, err := yamlschema.Load([]byte(tc.def))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}
