package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/levels"
)

func TestCheckLevelEmbedded(t *testing.T) {
	flagFrames = 120
	logger := log.New(io.Discard)
	cfg := config.Default()
	catalog := levels.Embedded()

	for i := 1; i <= cfg.Levels.Max; i++ {
		if err := checkLevel(logger, cfg, catalog, i); err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
	}
}

func TestCheckLevelRejectsBrokenFile(t *testing.T) {
	flagFrames = 1
	dir := t.TempDir()
	broken := "name: Broken\nplatforms: []\n"
	if err := os.WriteFile(filepath.Join(dir, levels.FileName(1)), []byte(broken), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}

	if err := checkLevel(log.New(io.Discard), config.Default(), levels.Dir(dir), 1); err == nil {
		t.Fatalf("expected broken level to fail")
	}
}
