package compile

import (
	"unicode"

	"github.com/coregx/corebt/ast"
)

// Options carries the flags that affect how atoms match. Multiline is not
// here: it only changes how the matcher carves the input into search
// windows, not how any single atom's condition is evaluated.
type Options struct {
	CaseInsensitive          bool
	DotMatchesLineSeparators bool
}

// unicodeCategory resolves a \p{Name} category name to a *unicode.RangeTable,
// accepting both the two-letter general-category abbreviations Go's unicode
// package uses (Lu, Nd, ...) and a set of friendly aggregate names
// (Letter, Number, ...).
func unicodeCategory(name string) (*unicode.RangeTable, bool) {
	if t, ok := unicode.Categories[name]; ok {
		return t, true
	}
	switch name {
	case "Letter":
		return unicode.Letter, true
	case "Mark":
		return unicode.Mark, true
	case "Number":
		return unicode.Number, true
	case "Punctuation":
		return unicode.Punct, true
	case "Symbol":
		return unicode.Symbol, true
	case "Separator":
		return unicode.Z, true
	case "Other":
		return unicode.Other, true
	default:
		return nil, false
	}
}

// isWordRune implements \w: letter, digit, or underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// foldRune lowercases r when caseInsensitive is set: pattern atoms are
// lowercased the same way pre-match, so equality after folding both sides
// is sufficient.
func foldRune(r rune, caseInsensitive bool) rune {
	if caseInsensitive {
		return unicode.ToLower(r)
	}
	return r
}

// matchItemPredicate compiles a single ast.MatchItem into a predicate over
// a rune.
func matchItemPredicate(item ast.MatchItem, opts Options) func(rune) bool {
	switch item.Kind {
	case ast.KindAnyCharacter:
		if opts.DotMatchesLineSeparators {
			return func(rune) bool { return true }
		}
		return func(r rune) bool { return r != '\n' }

	case ast.KindCharacter:
		want := foldRune(item.Char, opts.CaseInsensitive)
		return func(r rune) bool { return foldRune(r, opts.CaseInsensitive) == want }

	case ast.KindRange:
		lo, hi := item.Lo, item.Hi
		if opts.CaseInsensitive {
			return func(r rune) bool {
				f := foldRune(r, true)
				return (r >= lo && r <= hi) || (f >= foldRune(lo, true) && f <= foldRune(hi, true))
			}
		}
		return func(r rune) bool { return r >= lo && r <= hi }

	case ast.KindCharacterClass:
		return classPredicate(item.Class)

	case ast.KindUnicodeCategory:
		table, ok := unicodeCategory(item.Category)
		if !ok {
			return func(rune) bool { return false }
		}
		return func(r rune) bool { return unicode.Is(table, r) }

	case ast.KindCharacterGroup:
		preds := make([]func(rune) bool, len(item.Items))
		for i, sub := range item.Items {
			preds[i] = characterGroupItemPredicate(sub, opts)
		}
		member := func(r rune) bool {
			for _, p := range preds {
				if p(r) {
					return true
				}
			}
			return false
		}
		if item.Negated {
			return func(r rune) bool { return !member(r) }
		}
		return member

	default:
		return func(rune) bool { return false }
	}
}

func characterGroupItemPredicate(item ast.CharacterGroupItem, opts Options) func(rune) bool {
	return matchItemPredicate(ast.MatchItem{
		Kind: item.Kind, Class: item.Class, Category: item.Category,
		Char: item.Char, Lo: item.Lo, Hi: item.Hi,
	}, opts)
}

func classPredicate(class ast.CharacterClassKind) func(rune) bool {
	switch class {
	case ast.ClassWord:
		return isWordRune
	case ast.ClassNonWord:
		return func(r rune) bool { return !isWordRune(r) }
	case ast.ClassDigit:
		return unicode.IsDigit
	case ast.ClassNonDigit:
		return func(r rune) bool { return !unicode.IsDigit(r) }
	default:
		return func(rune) bool { return false }
	}
}
