package oto

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// inventory is the YAML shape of a sample inventory file:
//
//	samples:
//	  - alias: "a な"
//	    color: power
//	    min_tone: 40
//	    max_tone: 70
type inventory struct {
	Samples []Entry `yaml:"samples"`
}

// Load reads a YAML sample inventory into a Map.
func Load(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	var inv inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parse inventory: %w", err)
	}

	m := NewMap()
	for i, e := range inv.Samples {
		if e.Alias == "" {
			return nil, fmt.Errorf("sample %d: empty alias", i)
		}
		if e.MinTone != 0 && e.MaxTone != 0 && e.MinTone > e.MaxTone {
			return nil, fmt.Errorf("sample %d (%q): min_tone %d > max_tone %d", i, e.Alias, e.MinTone, e.MaxTone)
		}
		m.Add(e)
	}
	return m, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
