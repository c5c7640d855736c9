package dict

import "fmt"

// Aggregate folds fragments into a record in a single pass. Scalar fields
// keep the last value seen, sequences keep every value in decode order.
// Empty input produces empty record.
func Aggregate(fragments []Fragment) Record {
	rec := Record{
		PhoneticSymbols: make([]string, 0, 2),
		Pronunciations:  make([]string, 0, 2),
		Examples:        make([]ExampleSentence, 0, len(fragments)),
	}
	for _, f := range fragments {
		switch v := f.(type) {
		case Key:
			rec.Headword = string(v)
		case PartOfSpeech:
			rec.PartOfSpeech = string(v)
		case Acceptation:
			rec.Meaning = string(v)
		case PhoneticSymbol:
			rec.PhoneticSymbols = append(rec.PhoneticSymbols, string(v))
		case Pronunciation:
			rec.Pronunciations = append(rec.Pronunciations, string(v))
		case ExampleSentence:
			rec.Examples = append(rec.Examples, v)
		default:
			// new fragment kind was added without teaching aggregation about it
			panic(fmt.Sprintf("unexpected fragment type %T", f))
		}
	}
	return rec
}
