package dict

import (
	"fanyi/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the record. It exists for debug reports
// and manual inspection.
func (r *Record) String() string {
	if r == nil {
		return "<nil Record>"
	}
	return treeWriter{debug.NewTreeWriter()}.record(r).String()
}

func (tw treeWriter) record(r *Record) treeWriter {
	tw.Line(0, "Record")
	tw.TextBlock(1, "Headword", r.Headword)
	tw.List(1, "PhoneticSymbols", r.PhoneticSymbols)
	tw.List(1, "Pronunciations", r.Pronunciations)
	tw.TextBlock(1, "PartOfSpeech", r.PartOfSpeech)
	tw.TextBlock(1, "Meaning", r.Meaning)
	if len(r.Examples) > 0 {
		tw.Line(1, "Examples: %d", len(r.Examples))
		for i, ex := range r.Examples {
			tw.Line(2, "Example[%d]", i)
			tw.TextBlock(3, "Original", ex.Original)
			tw.TextBlock(3, "Translated", ex.Translated)
		}
	}
	return tw
}
