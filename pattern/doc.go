// Package pattern compiles and matches structural patterns over value
// trees.
//
// A pattern is an ordinary S-expression which may contain pattern forms
// written #?(kind ...). The kinds are any, symbol, string, integer, real,
// boolean, list and or. Every pattern form captures the value it matched
// in a numbered slot; slots are numbered in the order the forms appear.
//
//	p := pattern.MustCompile("(+ #?(integer) #?(integer))")
//	caps, ok := p.Match(v)
//
// Compile rewrites a tree read by the parse package in place. Match and
// MatchPattern fill a caller supplied capture slice and MatchString does
// the reading, compiling and matching in one call. A Library loads named
// patterns from a TOML file.
package pattern
