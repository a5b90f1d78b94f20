package csrc

// SourceKind classifies a token produced by the source-level scanner, the
// coarse grammar that walks a whole file looking for tracked call sites.
type SourceKind uint8

const (
	// SrcOther is the catch-all for bytes the source grammar does not care
	// about: keywords, numbers, punctuation, untracked identifiers.
	SrcOther SourceKind = iota

	SrcComment // line or block comment
	SrcString  // string literal, escape-aware, adjacent literals merged
	SrcLParen  // '('
	SrcRParen  // ')'

	// The three tracked formatting functions. A tracked name only opens a
	// call site when the very next token is '('.
	SrcPrintf
	SrcSprintf
	SrcSnprintf
)

// SourceToken is one token of the source-level grammar.
type SourceToken struct {
	Kind SourceKind
	Span Span
}

// ArgKind classifies a token produced by the argument-level scanner, which
// runs over the text between a call's parentheses.
type ArgKind uint8

const (
	ArgSymbol  ArgKind = iota // operators and loose punctuation
	ArgLParen                 // '('
	ArgRParen                 // ')'
	ArgComma                  // ','
	ArgComment                // line or block comment
	ArgChar                   // character literal
	ArgString                 // string literal
	ArgInt                    // integer literal
	ArgFloat                  // floating point literal
	ArgCast                   // '(int)', '(float)' or '(char*)'
	ArgIdent                  // identifier
)

// ArgToken is one token of the argument-level grammar. Type is only
// meaningful for ArgCast tokens.
type ArgToken struct {
	Kind ArgKind
	Span Span
	Type CType
}
