package ast

import "testing"

func mustParse(t *testing.T, pattern string) *Expression {
	t.Helper()
	expr, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", pattern, err)
	}
	return expr
}

func TestParseEmptyPattern(t *testing.T) {
	expr := mustParse(t, "")
	if len(expr.Items) != 0 {
		t.Errorf("empty pattern: got %d items, want 0", len(expr.Items))
	}
	if expr.StartAnchored {
		t.Errorf("empty pattern: StartAnchored = true, want false")
	}
}

func TestParseStartAnchor(t *testing.T) {
	expr := mustParse(t, "^abc")
	if !expr.StartAnchored {
		t.Fatalf("StartAnchored = false, want true")
	}
	if len(expr.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(expr.Items))
	}
}

func TestParseLiteralConcatenation(t *testing.T) {
	expr := mustParse(t, "abc")
	if len(expr.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(expr.Items))
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		m := expr.Items[i].Match
		if m == nil || m.Item.Kind != KindCharacter || m.Item.Char != want {
			t.Errorf("item %d: got %+v, want literal %q", i, expr.Items[i], want)
		}
	}
}

func TestParseAlternation(t *testing.T) {
	expr := mustParse(t, "a|b")
	if len(expr.Items) != 1 || expr.Items[0].Alternation == nil {
		t.Fatalf("expected a single Alternation item, got %+v", expr.Items)
	}
	alt := expr.Items[0].Alternation
	if len(alt.Left.Items) != 1 || alt.Left.Items[0].Match.Item.Char != 'a' {
		t.Errorf("left branch = %+v, want literal 'a'", alt.Left)
	}
	if len(alt.Right.Items) != 1 || alt.Right.Items[0].Match.Item.Char != 'b' {
		t.Errorf("right branch = %+v, want literal 'b'", alt.Right)
	}
}

func TestParseGroupCapturingAndIndex(t *testing.T) {
	expr := mustParse(t, "(a)(b(c))")
	g1 := expr.Items[0].Group
	g2 := expr.Items[1].Group
	if g1 == nil || !g1.Capturing || g1.Index != 1 {
		t.Fatalf("first group = %+v, want capturing index 1", g1)
	}
	if g2 == nil || !g2.Capturing || g2.Index != 2 {
		t.Fatalf("second group = %+v, want capturing index 2", g2)
	}
	inner := g2.Inner.Items[1].Group
	if inner == nil || !inner.Capturing || inner.Index != 3 {
		t.Fatalf("nested group = %+v, want capturing index 3", inner)
	}
}

func TestParseNonCapturingGroup(t *testing.T) {
	expr := mustParse(t, "(?:ab)")
	g := expr.Items[0].Group
	if g == nil || g.Capturing {
		t.Fatalf("group = %+v, want non-capturing", g)
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		kind    QuantifierKind
		lo, hi  int
		hasHi   bool
		lazy    bool
	}{
		{"a*", QuantZeroOrMore, 0, 0, false, false},
		{"a*?", QuantZeroOrMore, 0, 0, false, true},
		{"a+", QuantOneOrMore, 0, 0, false, false},
		{"a?", QuantZeroOrOne, 0, 0, false, false},
		{"a{2}", QuantRange, 2, 2, true, false},
		{"a{2,}", QuantRange, 2, 0, false, false},
		{"a{2,5}", QuantRange, 2, 5, true, false},
		{"a{2,3}?", QuantRange, 2, 3, true, true},
	}
	for _, tt := range tests {
		expr := mustParse(t, tt.pattern)
		q := expr.Items[0].Match.Quantifier
		if q == nil {
			t.Fatalf("%q: no quantifier parsed", tt.pattern)
		}
		if q.Kind != tt.kind || q.Lo != tt.lo || q.HasHi != tt.hasHi || q.Lazy != tt.lazy {
			t.Errorf("%q: got %+v, want kind=%v lo=%d hi=%d hasHi=%v lazy=%v",
				tt.pattern, q, tt.kind, tt.lo, tt.hi, tt.hasHi, tt.lazy)
		}
		if tt.hasHi && q.Hi != tt.hi {
			t.Errorf("%q: hi = %d, want %d", tt.pattern, q.Hi, tt.hi)
		}
	}
}

func TestParseCharacterGroup(t *testing.T) {
	expr := mustParse(t, "[^a-z\\d]")
	m := expr.Items[0].Match.Item
	if m.Kind != KindCharacterGroup || !m.Negated {
		t.Fatalf("got %+v, want negated character group", m)
	}
	if len(m.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(m.Items))
	}
	if m.Items[0].Kind != KindRange || m.Items[0].Lo != 'a' || m.Items[0].Hi != 'z' {
		t.Errorf("item 0 = %+v, want range a-z", m.Items[0])
	}
	if m.Items[1].Kind != KindCharacterClass || m.Items[1].Class != ClassDigit {
		t.Errorf("item 1 = %+v, want \\d", m.Items[1])
	}
}

func TestParseUnicodeCategory(t *testing.T) {
	expr := mustParse(t, `\p{Lu}`)
	m := expr.Items[0].Match.Item
	if m.Kind != KindUnicodeCategory || m.Category != "Lu" {
		t.Fatalf("got %+v, want UnicodeCategory Lu", m)
	}
}

func TestParseBackreference(t *testing.T) {
	expr := mustParse(t, `(ab)\1`)
	br := expr.Items[1].Backreference
	if br == nil || br.Index != 1 {
		t.Fatalf("got %+v, want backreference to group 1", expr.Items[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		wantPos int
	}{
		{"(abc", 4},
		{"abc)", 3},
		{"[]", 0},
		{"a{3,2}", 1},
		{"a{", 1},
		{"a\\q", 1},
		{"abc*", -1}, // sanity: valid pattern, excluded from pos check
	}
	for _, tt := range tests {
		if tt.wantPos == -1 {
			continue
		}
		_, err := Parse(tt.pattern)
		if err == nil {
			t.Errorf("%q: expected error, got none", tt.pattern)
			continue
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Errorf("%q: error %v is not *ParseError", tt.pattern, err)
			continue
		}
		if pe.Pos != tt.wantPos {
			t.Errorf("%q: error position = %d, want %d (%v)", tt.pattern, pe.Pos, tt.wantPos, err)
		}
	}
}

func TestCaptureGroupCount(t *testing.T) {
	expr := mustParse(t, "(a)(?:b)(c(d))")
	if got := CaptureGroupCount(expr); got != 3 {
		t.Errorf("CaptureGroupCount = %d, want 3", got)
	}
}
