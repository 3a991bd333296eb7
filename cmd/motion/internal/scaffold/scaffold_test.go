package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindModuleRootWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module github.com/acme/notify\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindModuleRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("expected %q, got %q", root, got)
	}
}

func TestFindModuleRootOutsideModule(t *testing.T) {
	if _, err := FindModuleRoot(t.TempDir()); err == nil {
		t.Error("expected an error outside a module")
	}
}

func TestModulePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module github.com/acme/notify\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ModulePath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != "github.com/acme/notify" {
		t.Errorf("expected github.com/acme/notify, got %q", got)
	}
}

func TestModulePathMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("// no module line\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ModulePath(dir); err == nil {
		t.Error("expected an error for a go.mod without a module line")
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"github.com/acme/notify", "notify"},
		{"github.com/acme/notify/v2", "notify"},
		{"notify", "notify"},
		{"", "app"},
	}
	for _, tt := range tests {
		if got := ModuleName(tt.path); got != tt.want {
			t.Errorf("ModuleName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
