package ai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StaticConfig describes fixed-answer tools loaded from a local YAML file.
// Handy for things that never change, like the favourite locations of the
// household the bot runs for.
type StaticConfig struct {
	Tools []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Result      string `yaml:"result"`
	} `yaml:"tools"`
}

func (f *ToolFactory) staticTools() ([]Tool, error) {
	staticContent, err := os.ReadFile(f.config.StaticToolsPath)
	if err != nil {
		return nil, fmt.Errorf("could not read static tools file: %w", err)
	}

	var conf StaticConfig
	if err := yaml.Unmarshal(staticContent, &conf); err != nil {
		return nil, fmt.Errorf("could not unmarshal StaticConfig content: %w", err)
	}

	tools := make([]Tool, len(conf.Tools))
	for i, t := range conf.Tools {
		tools[i] = Tool{
			Name:        t.Name,
			Description: t.Description,
			Fn: func(_ string) (string, error) {
				return t.Result, nil
			},
		}
	}

	return tools, nil
}
