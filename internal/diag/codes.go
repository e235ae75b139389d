package diag

import "fmt"

// Code identifies a diagnostic kind. Lexical codes live in the 1xxx range;
// later stages (parser, semantic analysis) get their own ranges.
type Code uint16

const (
	// UnknownCode is the zero value.
	UnknownCode Code = 0

	// LexUnterminatedBlockComment: a block comment ran to end of input.
	LexUnterminatedBlockComment Code = 1001
	// LexUnterminatedString: a string literal ran to end of input.
	LexUnterminatedString Code = 1002
	// LexUnterminatedHexString: a hex string literal ran to end of input.
	LexUnterminatedHexString Code = 1003
	// LexEmptyIntDigits: a radix prefix with no digits after it.
	LexEmptyIntDigits Code = 1004
	// LexEmptyExponent: an exponent marker with no digits after it.
	LexEmptyExponent Code = 1005
	// LexUnknownPrefix: identifier text glued to a quote that is not a
	// recognized literal prefix.
	LexUnknownPrefix Code = 1006
	// LexInvalidIdent: an identifier containing disallowed codepoints.
	LexInvalidIdent Code = 1007
	// LexUnknownChar: a character the scanner does not recognize.
	LexUnknownChar Code = 1008

	// IOLoadFileError: a source file could not be read.
	IOLoadFileError Code = 1100
)

func (c Code) String() string {
	return fmt.Sprintf("SOL%04d", uint16(c))
}
