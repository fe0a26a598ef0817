// Package ast defines the abstract syntax tree produced by the pattern
// parser and consumed by the compiler. Nodes are plain structs; the AST
// carries no behavior of its own beyond the invariants documented on each
// type.
package ast

// Expression is a sequence of items to be matched in order. A pattern
// beginning with "^" sets StartAnchored on the top-level Expression; nested
// Expressions (inside groups and alternation branches) never set it.
type Expression struct {
	Items          []ExpressionItem
	StartAnchored  bool
}

// ExpressionItem is one element of an Expression: a Match, a Group, a
// Backreference, or an Alternation. Exactly one of the embedded pointers
// is non-nil.
type ExpressionItem struct {
	Match         *Match
	Group         *Group
	Backreference *Backreference
	Alternation   *Alternation
}

// Alternation represents Left "|" Right. The AST is right-associative
// (Right may itself contain an Alternation) but the matcher always tries
// Left before Right, so evaluation is left-biased regardless of tree shape.
type Alternation struct {
	Left  Expression
	Right Expression
}

// Group is a parenthesized subexpression, optionally capturing and
// optionally quantified. Index is the 1-based capture index assigned at
// parse time; it is meaningless (and unused) when Capturing is false.
type Group struct {
	Inner      Expression
	Capturing  bool
	Index      int
	Quantifier *Quantifier
}

// Match is a single atom optionally followed by a quantifier.
type Match struct {
	Item       MatchItem
	Quantifier *Quantifier
}

// MatchItem is one of the atom kinds a pattern can contain. Exactly one
// field is meaningful, selected by Kind.
type MatchItem struct {
	Kind MatchItemKind

	// CharacterGroup
	Negated bool
	Items   []CharacterGroupItem

	// CharacterClass
	Class CharacterClassKind

	// UnicodeCategory
	Category string

	// Character
	Char rune

	// Range
	Lo, Hi rune
}

// MatchItemKind discriminates the variants of MatchItem.
type MatchItemKind int

const (
	KindAnyCharacter MatchItemKind = iota
	KindCharacterGroup
	KindCharacterClass
	KindUnicodeCategory
	KindCharacter
	KindRange
)

// CharacterGroupItem is one member of a CharacterGroup: a class shorthand,
// a Unicode category, a single character, or a range. Discriminated the
// same way as MatchItem, via Kind.
type CharacterGroupItem struct {
	Kind     MatchItemKind // KindCharacterClass | KindUnicodeCategory | KindCharacter | KindRange
	Class    CharacterClassKind
	Category string
	Char     rune
	Lo, Hi   rune
}

// CharacterClassKind names a \w \W \d \D shorthand class.
type CharacterClassKind int

const (
	ClassWord CharacterClassKind = iota
	ClassNonWord
	ClassDigit
	ClassNonDigit
)

// QuantifierKind names the repetition shape; Range carries explicit bounds.
type QuantifierKind int

const (
	QuantZeroOrMore QuantifierKind = iota
	QuantOneOrMore
	QuantZeroOrOne
	QuantRange
)

// Quantifier describes how many times the preceding atom or group repeats.
// For QuantRange, HasHi false means unbounded ("{lo,}"); Hi is meaningless
// when HasHi is false. Lazy reverses the try-order the compiler generates
// (see compile package).
type Quantifier struct {
	Kind  QuantifierKind
	Lo    int
	Hi    int
	HasHi bool
	Lazy  bool
}

// Backreference is "\N": match the literal text previously captured by
// capture group N (1-based). N must name a group that appears somewhere in
// the pattern; whether it has closed by the time the backreference is
// reached is a match-time, not a parse-time, concern.
type Backreference struct {
	Index int
}
