package predefinedbindings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phoe-krk/pseudonyms/internal/core/domain/binding"
	"github.com/phoe-krk/pseudonyms/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the PredefinedBindingProvider interface by
// reading per-scope pseudonym bindings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing predefined bindings.
func NewYAMLProvider(filePath string) (ports.PredefinedBindingProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

/*
GetPredefinedBindings reads and parses bindings from the configured YAML
file. The file maps scope names to lists of {namespace, nickname} pairs:

	user:
	  - namespace: pkg.math
	    nickname: m

If the file does not exist or is empty, it returns an empty map and no
error.
*/
func (p *YAMLProvider) GetPredefinedBindings() (map[string][]binding.Binding, error) {
	predefined := map[string][]binding.Binding{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file just means no predefined bindings.
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to read predefined bindings file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	err = decoder.Decode(&predefined)
	if err != nil {
		// A file holding only comments or "---" decodes to EOF; treat it
		// like an empty file.
		if errors.Is(err, io.EOF) {
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to unmarshal predefined bindings from %s: %w", p.filePath, err)
	}

	return predefined, nil
}
