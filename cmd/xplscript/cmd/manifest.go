package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the session config a script directory can carry alongside its
// .xpl files, the demo host's counterpart to the teacher's sqlcode.yaml.
type Manifest struct {
	Script   string   `yaml:"script"`
	LogLevel string   `yaml:"loglevel"`
	Tags     []string `yaml:"tags"`
}

// LoadManifest reads xplscript.yaml from path, if present. A missing file
// is not an error: the demo host runs fine off bare CLI arguments.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
