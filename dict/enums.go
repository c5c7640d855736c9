package dict

//go:generate go tool go-enum -f=$GOFILE

// Kind of response decoding failure.
// ENUM(malformed, unknownField, incompleteField)
type DecodeErrorKind int
