package templates

import (
	"strings"
	"testing"
)

func TestRenderMotionYAML(t *testing.T) {
	out, err := Render("init/motion.yaml.tmpl", &Data{
		ModulePath: "github.com/acme/notify",
		ModuleName: "notify",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "duration: 300ms") {
		t.Error("expected default duration in rendered motion.yaml")
	}
	if !strings.Contains(out, `text: "notify demo"`) {
		t.Errorf("expected module name substituted, got:\n%s", out)
	}
}

func TestRenderDemoMain(t *testing.T) {
	out, err := Render("init/main.go.tmpl", &Data{
		ModulePath: "github.com/acme/notify",
		ModuleName: "notify",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"package main",
		"github.com/go-drift/motion/pkg/term",
		"Hello from notify",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in rendered main.go", want)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render("init/missing.tmpl", &Data{}); err == nil {
		t.Error("expected an error for a missing template")
	}
}
