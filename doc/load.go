package doc

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Load decodes and validates a YAML or JSON document.
func Load(d []byte) (*Node, error) {
	n := &Node{}
	if err := yaml.Unmarshal(d, n); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Marshal encodes n as YAML.
func Marshal(n *Node) ([]byte, error) {
	return yaml.Marshal(n)
}
