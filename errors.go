// File: nickelodeon/errors.go
package nickelodeon

import "errors"

// Error categories returned by this package. Each load stage wraps its
// collaborator's diagnostic into one of these, so callers can classify
// failures with errors.Is/As:
//   - ErrRead: the Nickel program could not be loaded at all (missing or
//     unreadable file, evaluator binary not found).
//   - ErrEvaluate: the program loaded but the Nickel code failed to
//     evaluate (syntax error, contract violation, runtime error), or the
//     exported value could not be converted into a tree.
//   - ErrDecode: evaluation succeeded but the resulting value does not
//     match the shape of the requested target type.
//
// Resolution absence is deliberately not represented here: when no explicit
// path is given and no candidate file exists, Load returns the zero value
// of the target type with a nil error.
var (
	ErrRead     = errors.New("read nickel program")
	ErrEvaluate = errors.New("evaluate nickel program")
	ErrDecode   = errors.New("decode nickel value")
)
