package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alastairzotos/eco-parser/config"
)

func TestRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	want := []string{"run", "bundle", "fmt"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatalf("Find(%q): %v", name, err)
		}
		if cmd.Name() != name {
			t.Errorf("got %q, want %q", cmd.Name(), name)
		}
	}
}

func TestRunFileEvaluatesAndPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.eco")
	if err := os.WriteFile(path, []byte("const x = 1 + 2; x;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runFile(path); err != nil {
		t.Fatalf("runFile: %v", err)
	}
}

func TestFmtFilePrintsCanonicalSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.eco")
	if err := os.WriteFile(path, []byte("const x=1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fmtFile(path); err != nil {
		t.Fatalf("fmtFile: %v", err)
	}
}

func TestResolveEntryFileFallsBackToConfig(t *testing.T) {
	savedCfg := cfg
	defer func() { cfg = savedCfg }()

	cfg = config.Config{RootDir: "/project", EntryFile: "index.eco"}
	got, err := resolveEntryFile(nil)
	if err != nil {
		t.Fatalf("resolveEntryFile: %v", err)
	}
	if want := filepath.Join("/project", "index.eco"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveEntryFilePrefersArgOverConfig(t *testing.T) {
	savedCfg := cfg
	defer func() { cfg = savedCfg }()

	cfg = config.Config{RootDir: "/project", EntryFile: "index.eco"}
	got, err := resolveEntryFile([]string{"other.eco"})
	if err != nil {
		t.Fatalf("resolveEntryFile: %v", err)
	}
	if got != "other.eco" {
		t.Errorf("got %q, want %q", got, "other.eco")
	}
}

func TestResolveEntryFileErrorsWithNoArgAndNoConfig(t *testing.T) {
	savedCfg := cfg
	defer func() { cfg = savedCfg }()

	cfg = config.Config{}
	if _, err := resolveEntryFile(nil); err == nil {
		t.Error("expected an error with no argument and no configured entryFile")
	}
}

func TestRunCommandLoadsEcoYamlEntryFile(t *testing.T) {
	savedCfg := cfg
	defer func() { cfg = savedCfg }()

	dir := t.TempDir()
	entry := filepath.Join(dir, "index.eco")
	if err := os.WriteFile(entry, []byte("const x = 1 + 2; x;"), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "eco.yaml")
	if err := os.WriteFile(yamlPath, []byte("entryFile: index.eco\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	root := newRootCmd()
	root.SetArgs([]string{"run"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestBundleFileWritesOutput(t *testing.T) {
	savedCfg := cfg
	cfg = config.Config{}
	defer func() { cfg = savedCfg }()

	dir := t.TempDir()
	entry := filepath.Join(dir, "main.eco")
	if err := os.WriteFile(entry, []byte("const x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "bundle.js")
	if err := bundleFile(entry, out); err != nil {
		t.Fatalf("bundleFile: %v", err)
	}
	bytes, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(bytes) == 0 {
		t.Error("expected non-empty bundle output")
	}
}
