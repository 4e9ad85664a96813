package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/safetypro/internal/config"
)

func TestDBPathFor(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag", "a.db")
	envPath := filepath.Join(dir, "env", "b.db")
	c := &config.Config{DBPath: envPath}

	got, err := dbPathFor(flagPath, c)
	if err != nil || got != flagPath {
		t.Errorf("dbPathFor(flag) = %q, %v; want %q", got, err, flagPath)
	}

	got, err = dbPathFor("", c)
	if err != nil || got != envPath {
		t.Errorf("dbPathFor(config) = %q, %v; want %q", got, err, envPath)
	}
	if _, err := os.Stat(filepath.Dir(envPath)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "checklist:\n  - {id: X1, module: 15, topic: Empilhadeira}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := catalogFrom(path)
	if err != nil {
		t.Fatalf("catalogFrom: %v", err)
	}
	if len(cat.Checklist) != 1 || cat.Checklist[0].Topic != "Empilhadeira" {
		t.Errorf("checklist = %+v", cat.Checklist)
	}
	if len(cat.Quiz) != 0 {
		t.Error("a catalog file replaces the bundled content")
	}
}

func TestCatalogFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("checklist: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := catalogFrom(path); err == nil {
		t.Error("invalid YAML should fail")
	}
	if _, err := catalogFrom(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestCatalogFromBundled(t *testing.T) {
	cat, err := catalogFrom("")
	if err != nil {
		t.Fatalf("catalogFrom: %v", err)
	}
	if len(cat.Quiz) == 0 {
		t.Error("bundled catalog should have quiz items")
	}
}
