// Package dict decodes iciba dictionary responses and folds them into a
// single dictionary record.
package dict

// Fragment is one decoded unit of the response body. The set of
// implementations is closed: Key, PhoneticSymbol, Pronunciation,
// PartOfSpeech, Acceptation and ExampleSentence.
type Fragment interface {
	fragment()
}

// Key is the headword as recognized by the service.
type Key string

// PhoneticSymbol is a pronunciation spelling. By service convention the
// first one is British and the second one American.
type PhoneticSymbol string

// Pronunciation is a reference to pronunciation audio, positionally paired
// with PhoneticSymbol.
type Pronunciation string

// PartOfSpeech is a grammatical category label.
type PartOfSpeech string

// Acceptation is a short gloss.
type Acceptation string

// ExampleSentence is an original sentence with its translation.
type ExampleSentence struct {
	Original   string
	Translated string
}

func (Key) fragment() {}
func (PhoneticSymbol) fragment() {}
func (Pronunciation) fragment() {}
func (PartOfSpeech) fragment() {}
func (Acceptation) fragment() {}
func (ExampleSentence) fragment() {}

// Record is an aggregated lookup result ready to be rendered.
type Record struct {
	Headword        string
	PhoneticSymbols []string
	Pronunciations  []string
	PartOfSpeech    string
	Meaning         string
	Examples        []ExampleSentence
}

// Slots of dialect renderings in PhoneticSymbols. Nothing in the response
// marks them, only position does.
const (
	BritishSlot  = 0
	AmericanSlot = 1
)

// Dialects returns British and American phonetic symbols. ok is false
// unless both are present.
func (r *Record) Dialects() (british, american string, ok bool) {
	if len(r.PhoneticSymbols) <= AmericanSlot {
		return "", "", false
	}
	return r.PhoneticSymbols[BritishSlot], r.PhoneticSymbols[AmericanSlot], true
}
