package render

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"fanyi/dict"
)

type Example struct {
	Index      int
	Original   string
	Translated string
}

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Headword        string
	British         string
	American        string
	HaveDialects    bool
	PhoneticSymbols []string
	Pronunciations  []string
	PartOfSpeech    string
	Meaning         string
	Examples        []Example
	Attribution     string
}

// Template is a Renderer driven by user supplied text/template, slim-sprig
// functions are available.
type Template struct {
	tmpl *template.Template
}

func NewTemplate(name, text string) (*Template, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template %s: %w", name, err)
	}
	return &Template{tmpl: tmpl}, nil
}

func (t *Template) Render(r *dict.Record) (string, error) {
	buf := new(bytes.Buffer)
	if err := t.tmpl.Execute(buf, buildValues(r)); err != nil {
		return "", fmt.Errorf("unable to expand template %s: %w", t.tmpl.Name(), err)
	}
	return buf.String(), nil
}

func buildValues(r *dict.Record) Values {
	v := Values{
		Headword:        r.Headword,
		PhoneticSymbols: r.PhoneticSymbols,
		Pronunciations:  r.Pronunciations,
		PartOfSpeech:    r.PartOfSpeech,
		Meaning:         r.Meaning,
		Examples:        make([]Example, 0, len(r.Examples)),
		Attribution:     Attribution,
	}
	v.British, v.American, v.HaveDialects = r.Dialects()
	for i, ex := range r.Examples {
		v.Examples = append(v.Examples, Example{Index: i + 1, Original: ex.Original, Translated: ex.Translated})
	}
	return v
}
