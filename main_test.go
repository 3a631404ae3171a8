package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunReturnsConfigError(t *testing.T) {
	t.Setenv("RAYCASTER_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	if err := run(false); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestRunReturnsEngineError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raycaster.toml")
	body := "[assets]\nmap_path = \"" + filepath.ToSlash(filepath.Join(dir, "absent.txt")) + "\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RAYCASTER_CONFIG", path)

	// profiling on: the deferred Stop must run on the error path
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if err := run(true); err == nil {
		t.Fatal("Expected an error for a missing map file")
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("CPU profile not flushed: %v", err)
	}
}
