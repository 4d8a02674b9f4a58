package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// File represents the structure of the mvnconf.yaml configuration file.
type File struct {
	Properties map[string]PropertyValue `yaml:"properties"`
}

// PropertyValue is a property in the config file. It is written either as a
// scalar or, for list-valued keys such as vertx.maven.remoteRepos, as a
// sequence that is joined with single spaces.
type PropertyValue string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PropertyValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*p = PropertyValue(strings.Join(items, " "))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*p = PropertyValue(s)
	return nil
}
