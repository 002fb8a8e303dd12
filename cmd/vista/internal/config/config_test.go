package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing vista.yaml to be fine, got %v", err)
	}
	if cfg.App.Name != "" || cfg.Manifest != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadOptional_Present(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vista.yaml", "app:\n  name: shop\nmanifest: ui/views.yaml\n")

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Name != "shop" {
		t.Errorf("app name = %q", cfg.App.Name)
	}
	if cfg.Manifest != "ui/views.yaml" {
		t.Errorf("manifest = %q", cfg.Manifest)
	}
}

func TestLoadOptional_BadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vista.yaml", "app: [")
	if _, err := LoadOptional(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/shop\n\ngo 1.24.0\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.ModulePath != "example.com/acme/shop" {
		t.Errorf("module path = %q", r.ModulePath)
	}
	if r.AppName != "shop" {
		t.Errorf("app name = %q, want module basename", r.AppName)
	}
	if r.ManifestPath != filepath.Join(dir, DefaultManifest) {
		t.Errorf("manifest path = %q", r.ManifestPath)
	}
}

func TestResolve_ConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/shop/v2\n")
	writeFile(t, dir, "vista.yaml", "app:\n  name: storefront\nmanifest: ui/views.yaml\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.AppName != "storefront" {
		t.Errorf("app name = %q", r.AppName)
	}
	if r.ManifestPath != filepath.Join(dir, "ui", "views.yaml") {
		t.Errorf("manifest path = %q", r.ManifestPath)
	}
}

func TestResolve_VersionedModulePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/shop/v3\n")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// The /vN suffix does not leak into the app name.
	if r.AppName != "shop" {
		t.Errorf("app name = %q, want shop", r.AppName)
	}
}

func TestResolve_NoGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Fatal("expected error without go.mod")
	}
}
