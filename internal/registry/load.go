package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// registryFile is the YAML shape of an external registry definition.
type registryFile struct {
	Configs []ExtractionConfig `yaml:"configs"`
}

// Load reads an extraction-config registry from a YAML file. File order
// becomes registry order.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing registry file %s: %w", path, err)
	}
	if len(file.Configs) == 0 {
		return nil, fmt.Errorf("registry file %s defines no configs", path)
	}
	return New(file.Configs...)
}
