package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-vista/vista/pkg/binding"
)

const sampleManifest = `marker: v-view
views:
  - name: OrderSummary
    html: "<h2>Order</h2>"
    options:
      - name: title
        required: true
      - name: limit
        default: 10
      - name: total
        bind: order.total | currency
  - name: Cart
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "views.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Marker != "v-view" {
		t.Errorf("marker = %q", m.Marker)
	}
	if len(m.Views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(m.Views))
	}

	v := m.Views[0]
	if v.Name != "OrderSummary" || len(v.Options) != 3 {
		t.Fatalf("unexpected view: %+v", v)
	}
	if !v.Options[0].Required {
		t.Error("title should be required")
	}
	if v.Options[1].Default != 10 {
		t.Errorf("limit default = %v", v.Options[1].Default)
	}
	if v.Options[2].Bind != "order.total | currency" {
		t.Errorf("total bind = %q", v.Options[2].Bind)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for a missing manifest")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeManifest(t, "views: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate_CleanManifest(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if issues := m.Validate(); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidate_Findings(t *testing.T) {
	m := &Manifest{
		Marker: "9bad--marker",
		Views: []View{
			{Name: "A", Options: []Option{
				{Name: "x", Required: true, Default: 1},
				{Name: "x"},
				{Name: "y", Bind: "not a keypath"},
			}},
			{Name: "A"},
			{},
		},
	}

	issues := m.Validate()
	wantSubstrings := []string{
		"not a valid attribute name",
		"required but carries a default",
		`duplicate option "x"`,
		`option "y"`,
		`duplicate view "A"`,
		"view with no name",
	}
	if len(issues) != len(wantSubstrings) {
		t.Fatalf("expected %d issues, got %d: %v", len(wantSubstrings), len(issues), issues)
	}
	for _, want := range wantSubstrings {
		found := false
		for _, issue := range issues {
			if strings.Contains(issue.Error(), want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no issue mentions %q in %v", want, issues)
		}
	}
}

func TestValidate_NoMarker(t *testing.T) {
	m := &Manifest{}
	issues := m.Validate()
	if len(issues) != 1 || !strings.Contains(issues[0].Error(), "no marker") {
		t.Fatalf("expected a single no-marker issue, got %v", issues)
	}
}

func TestValidMarker(t *testing.T) {
	valid := []string{"v-view", "data-view2", "x"}
	invalid := []string{"", "-view", "view-", "v--view", "V-View", "v view", "2view"}
	for _, s := range valid {
		if !validMarker(s) {
			t.Errorf("validMarker(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if validMarker(s) {
			t.Errorf("validMarker(%q) = true, want false", s)
		}
	}
}

func TestView_Definition(t *testing.T) {
	v := View{
		Name: "OrderSummary",
		HTML: "<p/>",
		Options: []Option{
			{Name: "title", Required: true},
			{Name: "limit", Default: 10},
		},
	}
	def := v.Definition()
	if def.Name != "OrderSummary" || def.HTML != "<p/>" {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if len(def.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(def.Options))
	}
	if !def.Options[0].Required || def.Options[1].Default != 10 {
		t.Errorf("options not carried over: %+v", def.Options)
	}
}

func TestView_Sources(t *testing.T) {
	v := View{
		Name: "OrderSummary",
		Options: []Option{
			{Name: "total", Bind: "order.total | currency"},
			{Name: "title"},
			{Name: "broken", Bind: "not a keypath"},
		},
	}
	sources := v.Sources()
	if len(sources) != 1 {
		t.Fatalf("expected only the valid bind, got %v", sources)
	}
	src, ok := sources["total"]
	if !ok || src.Kind != binding.SourceKeypath {
		t.Fatalf("total source = %+v, ok=%v", src, ok)
	}
	if got := src.Expr.String(); got != "order.total | currency" {
		t.Errorf("expr = %q", got)
	}
}
