package oto

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testInventory = `# 試験用インベントリ
samples:
  - alias: "- あ"
  - alias: "a な"
    color: power
    min_tone: 40
    max_tone: 70
  - alias: "a な"
    color: soft
`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(testInventory))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := m.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}

	// "a な" の power は音域付き
	got, ok := m.Find("a な", 60, "power")
	if !ok {
		t.Fatal("a な not found")
	}
	if got.Color != "power" {
		t.Errorf("color = %q, want power", got.Color)
	}

	// 音域外では soft 側に落ちる
	got, ok = m.Find("a な", 20, "power")
	if !ok {
		t.Fatal("a な not found below power range")
	}
	if got.Color != "soft" {
		t.Errorf("color = %q, want soft", got.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty alias", "samples:\n  - color: power\n"},
		{"inverted tone range", "samples:\n  - alias: あ\n    min_tone: 70\n    max_tone: 40\n"},
		{"malformed yaml", "samples: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.in)); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.in)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	if err := os.WriteFile(path, []byte(testInventory), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got := m.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile on missing path succeeded, want error")
	}
}
