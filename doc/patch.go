package doc

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Patch applies the RFC 6902 patch to src and returns the result as
// JSON. Either input may be YAML.
func Patch(src, patch []byte) ([]byte, error) {
	sj, err := yaml.YAMLToJSON(src)
	if err != nil {
		return nil, fmt.Errorf("error converting document: %w", err)
	}
	pj, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("error converting patch: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(pj)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	out, err := ops.Apply(sj)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	return out, nil
}
