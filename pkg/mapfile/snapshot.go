package mapfile

import (
	"gopkg.in/yaml.v3"

	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// marshalSnapshot serializes the request embedded in md (if any) to
// YAML, the same format LoadRequest/ToYAML use, so a saved map carries
// everything needed to regenerate it.
func marshalSnapshot(md *tilemap.Metadata) ([]byte, error) {
	if md.GenerationRequest == nil {
		return []byte{}, nil
	}
	return yaml.Marshal(md.GenerationRequest)
}
