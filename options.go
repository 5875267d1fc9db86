package olex

import "fmt"

// Option configures a tokenizing run.
type Option func(*options) error

type options struct {
	recover   bool
	maxErrors int
}

// Recover returns an Option that keeps scanning past lexical errors. The
// offending character, or the whole numeral for a malformed number, is
// skipped and the error recorded. Tokenize then returns every token it could
// scan together with an errors.LexErrors value.
func Recover() Option {
	return func(o *options) error {
		o.recover = true
		return nil
	}
}

// MaxErrors returns an Option that stops a recovering scan once n errors
// have been recorded. It has no effect without Recover.
//
// The limit n must be a positive integer.
func MaxErrors(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("olex: max errors must be a positive integer")
		}
		o.maxErrors = n
		return nil
	}
}
