// Package lookup composes dictionary lookup: response decoding, record
// aggregation and rendering.
package lookup

import (
	"go.uber.org/zap"

	"fanyi/dict"
	"fanyi/render"
)

// Result of processing single response body.
type Result struct {
	Record dict.Record
	Text   string
}

// Lookup turns raw response body into display text using fixed layout.
// Errors are *dict.DecodeError.
func Lookup(raw string) (string, error) {
	res, err := Process(raw, render.Plain{}, zap.NewNop())
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Process decodes raw response body, folds fragments into a record and
// renders it. Decode errors are returned unchanged.
func Process(raw string, renderer render.Renderer, log *zap.Logger) (*Result, error) {
	fragments, err := dict.DecodeString(raw, log)
	if err != nil {
		return nil, err
	}

	res := &Result{Record: dict.Aggregate(fragments)}
	log.Debug("Record aggregated",
		zap.String("headword", res.Record.Headword),
		zap.Int("phonetic_symbols", len(res.Record.PhoneticSymbols)),
		zap.Int("examples", len(res.Record.Examples)))

	if res.Text, err = renderer.Render(&res.Record); err != nil {
		return nil, err
	}
	return res, nil
}
