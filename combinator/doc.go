// Package combinator provides a small set of composable text matchers.
//
// A Matcher takes a Cursor and either succeeds, returning the matched
// fragments together with the Cursor positioned after the match, or fails
// without consuming anything. Failure is an ordinary outcome used for
// backtracking, not an error.
//
// Matchers are built from five node kinds: Literal, Class, Sequence,
// Repetition and Alternation. All of them are immutable after construction,
// so a single tree may be used from many goroutines at once as long as each
// caller supplies its own Cursor.
//
//	digit, _ := combinator.NewClass("0-9")
//	number := combinator.NewRepetition(digit, 1)
//	res, ok := combinator.Parse(number, "42 cookies")
//	// res.Fragments == []string{"4", "2"}, res.Next.Offset() == 2
//
// There is no memoization. Pathological grammars built from nested
// alternations and repetitions can revisit the same offset many times.
package combinator
