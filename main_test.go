package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSortNames(t *testing.T) {
	names := []string{"repo-10", "Zeta", "alpha", "repo-2", "Beta"}
	sortNames(names)

	want := []string{"alpha", "Beta", "repo-2", "repo-10", "Zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Expected %v, got %v", want, names)
	}
}

func TestPrintNames(t *testing.T) {
	var buf bytes.Buffer
	if err := printNames(&buf, []string{"repo-a", "repo-b"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got, want := buf.String(), "repo-a\nrepo-b\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	buf.Reset()
	if err := printNames(&buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("Expected no output for an empty project, got %q (%v)", buf.String(), err)
	}
}

func TestLoadAppConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	config, err := loadAppConfig("")
	if err != nil {
		t.Fatalf("Expected defaults without a config file, got %v", err)
	}
	if config.UI.Title != "Repos" {
		t.Errorf("Expected default title, got %q", config.UI.Title)
	}

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntick_rate = \"nope\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadAppConfig(path); err == nil {
		t.Error("Expected error for an invalid explicit config")
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
