package agent

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed prompts.yaml
var promptsYAML []byte

var prompts = mustLoadPrompts()

func mustLoadPrompts() map[string]string {
	var m map[string]string
	if err := yaml.Unmarshal(promptsYAML, &m); err != nil {
		panic(fmt.Sprintf("agent: invalid prompts.yaml: %v", err))
	}
	return m
}

// promptFor returns the embedded template for an agent by key.
func promptFor(key string) string {
	return prompts[key]
}

// render substitutes {placeholder} variables into a prompt template.
func render(tmpl string, vars map[string]string) string {
	for k, v := range vars {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	return tmpl
}
