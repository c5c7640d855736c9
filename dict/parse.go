package dict

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Element names of the response vocabulary. Matching is case sensitive.
const (
	tagKey         = "key"
	tagPS          = "ps"
	tagPron        = "pron"
	tagPos         = "pos"
	tagAcceptation = "acceptation"
	tagSent        = "sent"
	tagOrig        = "orig"
	tagTrans       = "trans"
)

// textFragments maps simple text elements to their fragment constructors,
// tagSent is composite and handled separately.
var textFragments = map[string]func(string) Fragment{
	tagKey:         func(s string) Fragment { return Key(s) },
	tagPS:          func(s string) Fragment { return PhoneticSymbol(s) },
	tagPron:        func(s string) Fragment { return Pronunciation(s) },
	tagPos:         func(s string) Fragment { return PartOfSpeech(s) },
	tagAcceptation: func(s string) Fragment { return Acceptation(s) },
}

// Decode reads complete response body and returns its fragments in document
// order.
func Decode(r io.Reader, log *zap.Logger) ([]Fragment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: err}
	}
	if err := checkWellFormed(data); err != nil {
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: err}
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: err}
	}
	return ParseResponseXML(doc, log)
}

// checkWellFormed makes strict token pass over the data. etree builds its
// tree from raw tokens and tolerates mismatched or unclosed elements as well
// as anything following the root element.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		depth    int
		haveRoot bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && haveRoot {
				return fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
			}
			depth, haveRoot = depth+1, true
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("unexpected text outside of root element (offset %d)", dec.InputOffset())
			}
		}
	}
}

// DecodeString is Decode for in-memory body.
func DecodeString(body string, log *zap.Logger) ([]Fragment, error) {
	return Decode(strings.NewReader(body), log)
}

// ParseResponseXML walks etree DOM and converts every child of the root
// element into a fragment. Nothing is reordered, merged or dropped, any
// element outside of the vocabulary fails the whole document.
func ParseResponseXML(doc *etree.Document, log *zap.Logger) ([]Fragment, error) {
	if doc == nil {
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: errors.New("nil document")}
	}

	roots := doc.ChildElements()
	switch len(roots) {
	case 0:
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: errors.New("document has no root element")}
	case 1:
	default:
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: fmt.Errorf("document has %d root elements", len(roots))}
	}
	root := roots[0]

	if text := charData(root); len(text) > 0 {
		return nil, &DecodeError{Kind: DecodeErrorKindMalformed, Err: fmt.Errorf("unexpected text %q in <%s>", text, root.FullTag())}
	}

	children := root.ChildElements()
	fragments := make([]Fragment, 0, len(children))
	for _, child := range children {
		tag := child.FullTag()
		if tag == tagSent {
			sent, err := parseSentence(child)
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, sent)
			continue
		}
		ctor, ok := textFragments[tag]
		if !ok {
			log.Debug("Unexpected tag in response", zap.String("parent", root.FullTag()), zap.String("tag", tag))
			return nil, &DecodeError{Kind: DecodeErrorKindUnknownField, Tag: tag}
		}
		text, err := elementText(child, tag)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, ctor(text))
	}

	log.Debug("Response decoded", zap.String("root", root.FullTag()), zap.Int("fragments", len(fragments)))
	return fragments, nil
}

func parseSentence(el *etree.Element) (ExampleSentence, error) {
	var (
		sent              ExampleSentence
		haveOrig, haveTrn bool
	)
	for _, child := range el.ChildElements() {
		tag := child.FullTag()
		path := tagSent + "/" + tag

		var dst *string
		switch tag {
		case tagOrig:
			if haveOrig {
				return sent, &DecodeError{Kind: DecodeErrorKindMalformed, Tag: path, Err: fmt.Errorf("duplicate %q in <%s>", tag, tagSent)}
			}
			dst, haveOrig = &sent.Original, true
		case tagTrans:
			if haveTrn {
				return sent, &DecodeError{Kind: DecodeErrorKindMalformed, Tag: path, Err: fmt.Errorf("duplicate %q in <%s>", tag, tagSent)}
			}
			dst, haveTrn = &sent.Translated, true
		default:
			return sent, &DecodeError{Kind: DecodeErrorKindUnknownField, Tag: path}
		}

		text, err := elementText(child, path)
		if err != nil {
			return sent, err
		}
		*dst = text
	}
	switch {
	case !haveOrig:
		return sent, &DecodeError{Kind: DecodeErrorKindIncompleteField, Tag: tagSent, Err: fmt.Errorf("missing %q", tagOrig)}
	case !haveTrn:
		return sent, &DecodeError{Kind: DecodeErrorKindIncompleteField, Tag: tagSent, Err: fmt.Errorf("missing %q", tagTrans)}
	}
	return sent, nil
}

// elementText returns character data of the text only element with
// surrounding whitespace removed. Nested elements are not part of the
// vocabulary and are reported under path.
func elementText(el *etree.Element, path string) (string, error) {
	if nested := el.ChildElements(); len(nested) > 0 {
		return "", &DecodeError{Kind: DecodeErrorKindUnknownField, Tag: path + "/" + nested[0].FullTag()}
	}
	return charData(el), nil
}

// charData concatenates character data (including CDATA) placed directly
// into the element and trims it. Service output is indented.
func charData(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}
