package token

// Keyword identifies one of the language's reserved words.
type Keyword int

const (
	CLASS Keyword = iota + 1
	EXTENDS
	IS
	VAR
	METHOD
	IF
	THEN
	ELSE
	WHILE
	LOOP
	RETURN
	END
	THIS
	TRUE
	FALSE
)

var keywordNames = [...]string{
	CLASS:   "class",
	EXTENDS: "extends",
	IS:      "is",
	VAR:     "var",
	METHOD:  "method",
	IF:      "if",
	THEN:    "then",
	ELSE:    "else",
	WHILE:   "while",
	LOOP:    "loop",
	RETURN:  "return",
	END:     "end",
	THIS:    "this",
	TRUE:    "true",
	FALSE:   "false",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for kw, name := range keywordNames {
		if name != "" {
			m[name] = Keyword(kw)
		}
	}
	return m
}()

func (k Keyword) String() string {
	if k <= 0 || int(k) >= len(keywordNames) {
		return "keyword(?)"
	}
	return keywordNames[k]
}

// LookupKeyword checks the keyword table for an identifier.
// It reports false if ident is not a reserved word.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}

// Keywords returns every reserved word in declaration order.
func Keywords() []Keyword {
	kws := make([]Keyword, 0, len(keywordNames)-1)
	for kw := CLASS; kw <= FALSE; kw++ {
		kws = append(kws, kw)
	}
	return kws
}
