// Package render turns dictionary records into display text.
package render

import (
	"fmt"
	"strings"

	"fanyi/dict"
)

// Attribution is always printed after headword.
const Attribution = "iciba.com"

// Renderer produces display text for a record.
type Renderer interface {
	Render(r *dict.Record) (string, error)
}

// Plain is a Renderer using fixed layout of Record.
type Plain struct{}

func (Plain) Render(r *dict.Record) (string, error) {
	return Record(r), nil
}

// Record lays out the entry:
//
//	<blank line>
//	 headword 英[ uk ] 美[ us ] ~ iciba.com
//	<blank line>
//	 - pos meaning
//	<blank line>
//	 1. original
//	   translated
//
// Phonetic brackets need at least two symbols, the part of speech line is
// printed only when part of speech is known (meaning alone is never shown).
func Record(r *dict.Record) string {
	var sb strings.Builder

	sb.WriteString("\n ")
	sb.WriteString(r.Headword)
	if uk, us, ok := r.Dialects(); ok {
		fmt.Fprintf(&sb, " 英[ %s ] 美[ %s ]", uk, us)
	}
	sb.WriteString(" ~ " + Attribution + "\n\n")

	if r.PartOfSpeech != "" {
		fmt.Fprintf(&sb, " - %s %s\n\n", r.PartOfSpeech, r.Meaning)
	}
	for i, ex := range r.Examples {
		fmt.Fprintf(&sb, " %d. %s\n   %s\n", i+1, ex.Original, ex.Translated)
	}
	return sb.String()
}
