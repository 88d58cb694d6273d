package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"dividend_valuation/pkg/core/utils"
)

// presetFile is the on-disk shape of a .yaml preset file: a list under a
// top-level "presets" key, so one file can hold a whole course worth of
// scenarios.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadFromDirectory walks dir and registers every preset found in .yaml,
// .yml and .hjson files. Hjson files hold a single preset each (the format
// is meant for hand-written scenarios). Unreadable, unparseable, or invalid
// presets are skipped with a warning rather than failing the whole load, so
// one bad file cannot take down the rest of the directory.
func (l *Library) LoadFromDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("preset directory not found: %s", dir)
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			l.loadYAMLFile(path)
		case ".hjson":
			l.loadHjsonFile(path)
		}
		return nil
	})
}

func (l *Library) loadYAMLFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[preset.Loader] Skipping %s: %v\n", path, err)
		return
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		fmt.Printf("[preset.Loader] Skipping %s: %v\n", path, err)
		return
	}

	for _, p := range file.Presets {
		if err := l.Register(p); err != nil {
			fmt.Printf("[preset.Loader] Skipping preset from %s: %v\n", path, err)
		}
	}
}

func (l *Library) loadHjsonFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[preset.Loader] Skipping %s: %v\n", path, err)
		return
	}

	var p Preset
	if err := utils.ParseHJSONToStruct(string(data), &p); err != nil {
		fmt.Printf("[preset.Loader] Skipping %s: %v\n", path, err)
		return
	}

	if err := l.Register(p); err != nil {
		fmt.Printf("[preset.Loader] Skipping preset from %s: %v\n", path, err)
	}
}
