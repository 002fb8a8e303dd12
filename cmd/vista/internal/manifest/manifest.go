// Package manifest reads and validates YAML view manifests.
//
// A manifest declares the view definitions a project exposes to markup,
// along with the marker attribute that selects them:
//
//	marker: v-view
//	views:
//	  - name: OrderSummary
//	    html: <h2>{{ order.title }}</h2>
//	    options:
//	      - name: title
//	        required: true
//	      - name: limit
//	        default: 10
//	      - name: total
//	        bind: order.total | currency
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-vista/vista/pkg/binding"
	"github.com/go-vista/vista/pkg/keypath"
	"github.com/go-vista/vista/pkg/view"
)

// Manifest is the root of a views.yaml file.
type Manifest struct {
	// Marker is the markup attribute that selects a view
	// (e.g. "v-view" for v-view="OrderSummary", v-view-title="...").
	Marker string `yaml:"marker"`
	Views  []View `yaml:"views"`
}

// View declares one view definition.
type View struct {
	Name    string   `yaml:"name"`
	HTML    string   `yaml:"html,omitempty"`
	Options []Option `yaml:"options,omitempty"`
}

// Option declares one option of a view.
type Option struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required,omitempty"`
	Default  any    `yaml:"default,omitempty"`
	// Bind is a keypath expression bound when markup supplies no
	// source for the option.
	Bind string `yaml:"bind,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// Validate checks the manifest for declaration problems and returns
// one error per finding.
func (m *Manifest) Validate() []error {
	var issues []error

	if m.Marker == "" {
		issues = append(issues, fmt.Errorf("manifest has no marker"))
	} else if !validMarker(m.Marker) {
		issues = append(issues, fmt.Errorf("marker %q is not a valid attribute name", m.Marker))
	}

	seenViews := make(map[string]bool)
	for _, v := range m.Views {
		if v.Name == "" {
			issues = append(issues, fmt.Errorf("view with no name"))
			continue
		}
		if seenViews[v.Name] {
			issues = append(issues, fmt.Errorf("duplicate view %q", v.Name))
		}
		seenViews[v.Name] = true

		seenOpts := make(map[string]bool)
		for _, opt := range v.Options {
			switch {
			case opt.Name == "":
				issues = append(issues, fmt.Errorf("view %q: option with no name", v.Name))
				continue
			case seenOpts[opt.Name]:
				issues = append(issues, fmt.Errorf("view %q: duplicate option %q", v.Name, opt.Name))
			}
			seenOpts[opt.Name] = true

			if opt.Required && opt.Default != nil {
				issues = append(issues, fmt.Errorf("view %q: option %q is required but carries a default", v.Name, opt.Name))
			}
			if opt.Bind != "" {
				if _, err := keypath.Parse(opt.Bind); err != nil {
					issues = append(issues, fmt.Errorf("view %q: option %q: %v", v.Name, opt.Name, err))
				}
			}
		}
	}
	return issues
}

// Definition converts a manifest view into a runtime definition.
func (v View) Definition() view.Definition {
	def := view.Definition{
		Name: v.Name,
		HTML: v.HTML,
	}
	for _, opt := range v.Options {
		def.Options = append(def.Options, binding.Option{
			Name:     opt.Name,
			Required: opt.Required,
			Default:  opt.Default,
		})
	}
	return def
}

// Sources builds the default option sources declared via bind.
// Invalid expressions are skipped; Validate reports them.
func (v View) Sources() map[string]binding.Source {
	sources := make(map[string]binding.Source)
	for _, opt := range v.Options {
		if opt.Bind == "" {
			continue
		}
		src, err := binding.Keypath(opt.Bind)
		if err != nil {
			continue
		}
		sources[opt.Name] = src
	}
	return sources
}

// validMarker accepts lowercase attribute names: letters, digits, and
// single hyphens, starting with a letter.
func validMarker(s string) bool {
	prevHyphen := true
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			prevHyphen = false
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
			prevHyphen = false
		case r == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return !prevHyphen && s != ""
}
