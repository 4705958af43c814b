package render

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/columns/pkg/errors"
)

// RenderJSON encodes l as indented JSON.
func RenderJSON(l Layout) ([]byte, error) {
	if l.Columns == nil {
		l.Columns = []Column{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return append(data, '\n'), nil
}

// ReadJSON decodes a layout written by [RenderJSON].
func ReadJSON(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	return l, nil
}
