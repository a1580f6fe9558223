// Package assert provides runtime assertions for internal contracts.
//
// Assertions are compiled in by default and panic on failure. Building with the
// assertions_disabled tag turns every assertion into a no-op, so hot paths pay
// nothing for them in production builds:
//
//	go build -tags assertions_disabled ./...
package assert

import "fmt"

// failure renders the panic message for a failed assertion.
// If the first arg is a string, it's used as a format string with remaining args.
// Otherwise, all args are included in the message.
func failure(args ...any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
