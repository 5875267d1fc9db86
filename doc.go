/*
Package olex is the lexical analysis stage of a small class-based language.
It turns source text into an ordered slice of classified tokens, each
annotated with the line and column range of its lexeme.

The language's terminal symbols are identifiers, the reserved words

	class extends is var method if then else while loop return end this true false

integer and real literals, the punctuation ( ) : . , and newline, and the
two-character operators := and =>. Spaces, tabs and // line comments are
skipped between tokens. Newlines are significant and produce tokens of their
own, including the newline that ends a comment.

Tokenizing a buffer:

	toks, err := olex.Tokenize([]byte("var x : Integer\nx := 42"))
	if err != nil {
		// err is a *errors.LexError. For "x = 42" it reads
		// unknown token '=' at line : 1, column : 3
	}
	for _, tok := range toks {
		fmt.Println(tok)
	}

Positions are 1-based. A token's span covers the half-open column range
[Start, End) on its line, counted in characters.

By default the first lexical error aborts the scan. The Recover option keeps
going past bad input and reports every error at once as an errors.LexErrors
value, alongside the tokens that could be scanned.

Each call is independent. The keyword table is the only shared state and it
is never modified, so tokenizing the same input always yields the same
tokens, from any number of goroutines.
*/
package olex
