// File: nickelodeon/doc.go

// Package nickelodeon locates, evaluates, and decodes Nickel configuration
// files into typed Go structs.
//
// Callers supply an application codename; the package probes a fixed,
// priority-ordered list of locations and loads the first configuration file
// it finds:
//
//  1. ./.{app}/config.ncl and ./.{app}/config.nickel in the current
//     working directory
//  2. {app}/config.ncl and {app}/config.nickel under the per-user
//     configuration directory ($XDG_CONFIG_HOME or the platform default)
//  3. the same pair under /etc
//
// An explicit path always wins over discovery, and the absence of any
// configuration file is not an error: the zero value of the target type is
// returned instead.
//
// Quick Start:
//
//	type Config struct {
//	    TestValue string        `nickel:"test_value"`
//	    Timeout   time.Duration `nickel:"timeout"`
//	}
//
//	cfg, err := nickelodeon.Load[Config]("myapp", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Evaluation is delegated to the nickel command-line tool by default; any
// implementation of the Evaluator interface can be substituted with
// WithEvaluator. Failures are classified into three categories, usable with
// errors.Is: ErrRead (the program could not be loaded), ErrEvaluate (the
// Nickel code failed to evaluate), and ErrDecode (the evaluated value does
// not fit the target struct).
//
// The package holds no shared mutable state; concurrent calls to Load are
// safe as long as the injected evaluator and predicates are.
package nickelodeon
