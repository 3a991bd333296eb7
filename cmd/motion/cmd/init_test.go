package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffoldFilesWritesBoth(t *testing.T) {
	dir := t.TempDir()

	written, err := scaffoldFiles(dir, "github.com/acme/notify", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 files written, got %v", written)
	}

	yamlData, err := os.ReadFile(filepath.Join(dir, "motion.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(yamlData), "notify demo") {
		t.Errorf("expected module name in motion.yaml, got:\n%s", yamlData)
	}

	mainData, err := os.ReadFile(filepath.Join(dir, "motion-demo", "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	src := string(mainData)
	if !strings.Contains(src, "github.com/acme/notify") {
		t.Error("expected module path in scaffolded main.go")
	}
	if !strings.Contains(src, "package main") {
		t.Error("expected a main package in scaffolded main.go")
	}
}

func TestScaffoldFilesRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "motion.yaml"), []byte("defaults: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := scaffoldFiles(dir, "github.com/acme/notify", false); err == nil {
		t.Fatal("expected an error for an existing motion.yaml")
	}

	if _, err := scaffoldFiles(dir, "github.com/acme/notify", true); err != nil {
		t.Fatalf("expected --force to overwrite, got %v", err)
	}
}
