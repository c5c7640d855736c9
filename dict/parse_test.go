package dict

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const helloResponse = `<?xml version="1.0" encoding="UTF-8"?>
<dict num="219" id="219" name="219">
  <key>hello</key>
  <ps>frontInput</ps>
  <pron>http://res.iciba.com/resource/amp3/oxford/0/28/a2/28a2.mp3</pron>
  <ps>backInput</ps>
  <pron>http://res.iciba.com/resource/amp3/1/0/5d/41/5d41402abc4b2a76b9719d911017c592.mp3</pron>
  <pos>int.</pos>
  <acceptation>greeting</acceptation>
  <sent>
    <orig>Hello!</orig>
    <trans>你好！</trans>
  </sent>
</dict>
`

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func TestDecode_Hello(t *testing.T) {
	got, err := DecodeString(helloResponse, testLogger(t))
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	want := []Fragment{
		Key("hello"),
		PhoneticSymbol("frontInput"),
		Pronunciation("http://res.iciba.com/resource/amp3/oxford/0/28/a2/28a2.mp3"),
		PhoneticSymbol("backInput"),
		Pronunciation("http://res.iciba.com/resource/amp3/1/0/5d/41/5d41402abc4b2a76b9719d911017c592.mp3"),
		PartOfSpeech("int."),
		Acceptation("greeting"),
		ExampleSentence{Original: "Hello!", Translated: "你好！"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fragments mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestDecode_PreservesOrderAndDuplicates(t *testing.T) {
	body := `<dict>
		<sent><orig>b</orig><trans>2</trans></sent>
		<key>A</key>
		<sent><orig>a</orig><trans>1</trans></sent>
		<key>B</key>
		<sent><orig>b</orig><trans>2</trans></sent>
	</dict>`

	got, err := DecodeString(body, testLogger(t))
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	want := []Fragment{
		ExampleSentence{Original: "b", Translated: "2"},
		Key("A"),
		ExampleSentence{Original: "a", Translated: "1"},
		Key("B"),
		ExampleSentence{Original: "b", Translated: "2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fragments mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestDecode_EmptyRoot(t *testing.T) {
	got, err := DecodeString(`<dict></dict>`, testLogger(t))
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no fragments, got %d", len(got))
	}
}

func TestDecode_CDATA(t *testing.T) {
	got, err := DecodeString(`<dict><acceptation><![CDATA[a & b]]></acceptation></dict>`, testLogger(t))
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if len(got) != 1 || got[0] != Acceptation("a & b") {
		t.Fatalf("unexpected fragments: %#v", got)
	}
}

func TestDecode_SurroundingMarkup(t *testing.T) {
	body := "<?xml version=\"1.0\"?>\n<!-- entry -->\n<dict>\n  <key>a</key>\n</dict>\n<!-- end -->\n"

	got, err := DecodeString(body, testLogger(t))
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if len(got) != 1 || got[0] != Key("a") {
		t.Fatalf("unexpected fragments: %#v", got)
	}
}

func TestDecode_NonUTF8Charset(t *testing.T) {
	// "naïve" in ISO-8859-1
	body := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><dict><key>na\xefve</key></dict>"

	got, err := DecodeString(body, testLogger(t))
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if len(got) != 1 || got[0] != Key("naïve") {
		t.Fatalf("unexpected fragments: %#v", got)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target error
		kind   DecodeErrorKind
		tag    string
	}{
		{name: "empty body", body: "", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "whitespace only", body: "  \n", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "not xml", body: "service unavailable", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "unbalanced", body: "<dict><key>hello</dict>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "unclosed root", body: "<dict><key>hello</key>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "two roots", body: "<dict/><dict/>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "text after root", body: "<dict/>junk", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "text after populated root", body: "<dict><key>a</key></dict>trailing junk", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "text before root", body: "junk<dict/>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "element after root", body: "<dict><key>a</key></dict>\n<key>b</key>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "text in root", body: "<dict>stray<key>a</key></dict>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "text in root after children", body: "<dict><key>a</key>stray</dict>", target: ErrMalformed, kind: DecodeErrorKindMalformed},
		{name: "duplicate orig", body: "<dict><sent><orig>a</orig><orig>b</orig><trans>c</trans></sent></dict>", target: ErrMalformed, kind: DecodeErrorKindMalformed, tag: "sent/orig"},
		{name: "duplicate trans", body: "<dict><sent><orig>a</orig><trans>b</trans><trans>c</trans></sent></dict>", target: ErrMalformed, kind: DecodeErrorKindMalformed, tag: "sent/trans"},
		{name: "element nested in key", body: "<dict><key>a<b>x</b>c</key></dict>", target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "key/b"},
		{name: "element nested in acceptation", body: "<dict><acceptation><i>x</i></acceptation></dict>", target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "acceptation/i"},
		{name: "element nested in orig", body: "<dict><sent><orig>a<em>b</em></orig><trans>c</trans></sent></dict>", target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "sent/orig/em"},
		{name: "unknown tag", body: "<dict><key>a</key><fy>b</fy></dict>", target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "fy"},
		{name: "tag case matters", body: "<dict><Key>a</Key></dict>", target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "Key"},
		{name: "prefixed tag", body: `<dict xmlns:x="urn:x"><x:key>a</x:key></dict>`, target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "x:key"},
		{name: "unknown sentence part", body: "<dict><sent><orig>a</orig><trans>b</trans><note>c</note></sent></dict>", target: ErrUnknownField, kind: DecodeErrorKindUnknownField, tag: "sent/note"},
		{name: "sentence without trans", body: "<dict><sent><orig>a</orig></sent></dict>", target: ErrIncompleteField, kind: DecodeErrorKindIncompleteField, tag: "sent"},
		{name: "sentence without orig", body: "<dict><sent><trans>b</trans></sent></dict>", target: ErrIncompleteField, kind: DecodeErrorKindIncompleteField, tag: "sent"},
		{name: "text only sentence", body: "<dict><sent>a</sent></dict>", target: ErrIncompleteField, kind: DecodeErrorKindIncompleteField, tag: "sent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.body, testLogger(t))
			if err == nil {
				t.Fatalf("expected error, got fragments %#v", got)
			}
			if got != nil {
				t.Errorf("expected nil fragments on error, got %#v", got)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if de.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", de.Kind, tt.kind)
			}
			if de.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", de.Tag, tt.tag)
			}
		})
	}
}

func TestParseResponseXML_NilDocument(t *testing.T) {
	_, err := ParseResponseXML(nil, testLogger(t))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestParseResponseXML_Document(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("dict")
	root.CreateElement("pos").SetText("n.")
	sent := root.CreateElement("sent")
	sent.CreateElement("trans").SetText("t")
	sent.CreateElement("orig").SetText("o")

	got, err := ParseResponseXML(doc, testLogger(t))
	if err != nil {
		t.Fatalf("ParseResponseXML() error = %v", err)
	}
	want := []Fragment{PartOfSpeech("n."), ExampleSentence{Original: "o", Translated: "t"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fragments mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestDecodeError_Messages(t *testing.T) {
	tests := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{Kind: DecodeErrorKindMalformed}, "malformed response"},
		{&DecodeError{Kind: DecodeErrorKindMalformed, Err: errors.New("EOF")}, "malformed response: EOF"},
		{&DecodeError{Kind: DecodeErrorKindUnknownField, Tag: "fy"}, `unknown field "fy"`},
		{&DecodeError{Kind: DecodeErrorKindIncompleteField, Tag: "sent"}, `incomplete field "sent"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	inner := errors.New("inner")
	err := &DecodeError{Kind: DecodeErrorKindMalformed, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected DecodeError to unwrap to inner error")
	}
	if errors.Is(err, ErrUnknownField) {
		t.Error("malformed error must not match ErrUnknownField")
	}
	if !strings.Contains((&DecodeError{Kind: DecodeErrorKindIncompleteField, Tag: "sent", Err: errors.New(`missing "orig"`)}).Error(), `missing "orig"`) {
		t.Error("incomplete field message must include cause")
	}
}

func TestDecodeErrorKind_String(t *testing.T) {
	tests := []struct {
		kind DecodeErrorKind
		want string
	}{
		{DecodeErrorKindMalformed, "malformed"},
		{DecodeErrorKindUnknownField, "unknownField"},
		{DecodeErrorKindIncompleteField, "incompleteField"},
		{DecodeErrorKind(42), "DecodeErrorKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if k, err := ParseDecodeErrorKind("unknownField"); err != nil || k != DecodeErrorKindUnknownField {
		t.Errorf("ParseDecodeErrorKind() = %v, %v", k, err)
	}
	if _, err := ParseDecodeErrorKind("bogus"); !errors.Is(err, ErrInvalidDecodeErrorKind) {
		t.Errorf("expected ErrInvalidDecodeErrorKind, got %v", err)
	}
}
