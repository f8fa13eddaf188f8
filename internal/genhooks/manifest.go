package genhooks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is an optional YAML file declaring hooks beyond the
// built-in list, useful while prototyping a hook on a branch before
// promoting it to BuiltinHooks.
type Manifest struct {
	Hooks []ManifestHook `yaml:"hooks"`
}

// ManifestHook mirrors the fields of Hook.
type ManifestHook struct {
	Name       string `yaml:"name"`
	CbArgs     string `yaml:"cb_args"`
	ReturnType string `yaml:"return_type"`
	LegacyHook string `yaml:"legacy_hook"`
}

// LoadManifest reads extra hook declarations from path.
func LoadManifest(path string) ([]Hook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	hooks := make([]Hook, 0, len(m.Hooks))
	for _, mh := range m.Hooks {
		if mh.Name == "" {
			return nil, fmt.Errorf("manifest %s: hook declaration missing a name", path)
		}
		hooks = append(hooks, Hook{
			Name:       mh.Name,
			CbArgs:     mh.CbArgs,
			ReturnType: mh.ReturnType,
			LegacyHook: mh.LegacyHook,
		})
	}
	return hooks, nil
}
