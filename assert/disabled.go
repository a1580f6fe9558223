//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

func True(value bool, args ...any) {
	// Intentionally left blank
}

func False(value bool, args ...any) {
	// Intentionally left blank
}

func NotNil(value any, args ...any) {
	// Intentionally left blank
}

var _ = failure
