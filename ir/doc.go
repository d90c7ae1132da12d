// Package ir provides the node representation of S-expression values and
// patterns.
//
// # Node Structure
//
// A [Node] is a tagged union: the Type field says which of the remaining
// fields carry the value. The empty list is represented by a nil *Node
// rather than by an allocated node, so a proper list is a chain of
// PairType nodes whose last Cdr is nil, and an improper (dotted) list is a
// chain whose last Cdr is some other value.
//
// # Node Types
//
//   - SymbolType, StringType: text in Text
//   - IntegerType: Int
//   - RealType: Float
//   - BooleanType: Bool
//   - PairType: Car and Cdr
//   - RawPatternType: a cell of a list written with "#?(" that has not been
//     compiled yet
//   - PatternVarType: a compiled pattern variable with Kind, Slot and, for
//     KindOr, the alternatives in Alts
//
// # Accessors
//
// The typed accessors ([Node.Integer], [Node.SymbolName], [Node.First], ...)
// panic with a [*TypeMismatchError] when called on a node of a different
// type. Calling them on the wrong type is a programming error, not a
// condition to recover from.
//
// # Ownership
//
// Trees are acyclic and owned by whoever holds the root. Nodes come from an
// [Allocator]; [ReleaseTo] returns a whole tree to its allocator. [Heap]
// allocates per node, [Pool] recycles nodes and [Arena] allocates in slabs
// and releases everything at once with [Arena.Reset].
//
// # Related Packages
//
//   - github.com/signadot/sexp/parse - Read text into nodes
//   - github.com/signadot/sexp/pattern - Compile and match patterns
//   - github.com/signadot/sexp/encode - Write nodes as text
package ir
