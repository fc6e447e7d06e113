package sink

import (
	"encoding/json"

	"github.com/matzehuels/moatarget/pkg/buildinfo"
	"github.com/matzehuels/moatarget/pkg/layout"
)

type jsonOutput struct {
	Generator string        `json:"generator"`
	Units     string        `json:"units"`
	Layout    layout.Layout `json:"layout"`
}

// RenderJSON exports the computed layout, lengths in points. Equal layouts
// always produce identical bytes.
func RenderJSON(l layout.Layout) ([]byte, error) {
	out := jsonOutput{
		Generator: buildinfo.Name,
		Units:     "pt",
		Layout:    l,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
