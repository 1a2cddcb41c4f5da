package formatters

import (
	"encoding/json"

	"guildscore/domain/explanation"
)

// JSON implements ports.FormatterPort by marshaling the Explanation
// value directly; field ordering matches struct declaration order so
// output is deterministic byte-for-byte for identical inputs.
type JSON struct{}

func (JSON) Format(e explanation.Explanation) ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
