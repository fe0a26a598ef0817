package corebt_test

import (
	"fmt"

	"github.com/coregx/corebt"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := corebt.Compile(`\d+`)
	if err != nil {
		panic(err)
	}

	ok, err := re.IsMatch("hello 123")
	if err != nil {
		panic(err)
	}
	fmt.Println(ok)
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	re := corebt.MustCompile(`hello`)
	ok, _ := re.IsMatch("hello world")
	fmt.Println(ok)
	// Output: true
}

// ExampleRegex_Matches demonstrates finding every non-overlapping match.
func ExampleRegex_Matches() {
	re := corebt.MustCompile(`\d+`)
	ms, err := re.Matches("age: 42, score: 100")
	if err != nil {
		panic(err)
	}
	for _, m := range ms {
		fmt.Printf("[%d:%d] ", m.Start, m.End)
	}
	fmt.Println()
	// Output: [5:7] [16:19]
}

// ExampleRegex_Matches_captureGroups demonstrates reading a match's capture
// group ranges.
func ExampleRegex_Matches_captureGroups() {
	re := corebt.MustCompile(`(\w+)@(\w+)`)
	ms, err := re.Matches("contact jane@example")
	if err != nil {
		panic(err)
	}
	m := ms[0]
	fmt.Println(m.Groups[0], m.Groups[1])
	// Output: {8 12} {13 20}
}

// ExampleCompileWithOptions demonstrates case-insensitive, multiline search.
func ExampleCompileWithOptions() {
	re, err := corebt.CompileWithOptions(`^foo`, corebt.Options{
		CaseInsensitive: true,
		Multiline:       true,
	})
	if err != nil {
		panic(err)
	}

	ms, err := re.Matches("FOO\nfoo\nbar")
	if err != nil {
		panic(err)
	}
	fmt.Println(len(ms))
	// Output: 2
}

// ExampleCompileError_Render demonstrates rendering a compile error with a
// marker at the offending position.
func ExampleCompileError_Render() {
	_, err := corebt.Compile(`(abc`)
	ce := err.(*corebt.CompileError)
	fmt.Println(ce.Render())
	// Output: (abc💥
}
