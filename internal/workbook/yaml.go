package workbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a workbook file (YAML or JSON). Format is detected by
// extension (.yaml/.yml, .json) or by content (leading '{' means JSON).
func LoadFile(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a workbook from bytes. ext is the format hint; empty means
// detect from content.
func Load(data []byte, ext string) (*Workbook, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	switch ext {
	case ".yaml":
		return loadYAML(data)
	case ".json":
		return loadJSON(data)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return loadJSON(data)
	}
	return loadYAML(data)
}

func loadYAML(data []byte) (*Workbook, error) {
	var wb Workbook
	if err := yaml.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("parse workbook yaml: %w", err)
	}
	return &wb, nil
}

func loadJSON(data []byte) (*Workbook, error) {
	var wb Workbook
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("parse workbook json: %w", err)
	}
	return &wb, nil
}

// SaveFile writes the workbook as YAML to path.
func SaveFile(wb *Workbook, path string) error {
	data, err := yaml.Marshal(wb)
	if err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
