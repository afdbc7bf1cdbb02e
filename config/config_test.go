package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alastairzotos/eco-parser/config"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "eco.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EntryFile != "" {
		t.Errorf("got EntryFile %q, want empty", cfg.EntryFile)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eco.yaml")
	content := "entryFile: index.eco\nverbose: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EntryFile != "index.eco" {
		t.Errorf("got EntryFile %q, want %q", cfg.EntryFile, "index.eco")
	}
	if !cfg.Verbose {
		t.Error("got Verbose=false, want true")
	}
	if cfg.RootDir != dir {
		t.Errorf("got RootDir %q, want %q", cfg.RootDir, dir)
	}
}

func TestLoadRootDirRelativeToConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eco.yaml")
	content := "rootDir: src\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(dir, "src")
	if cfg.RootDir != want {
		t.Errorf("got RootDir %q, want %q", cfg.RootDir, want)
	}
}
