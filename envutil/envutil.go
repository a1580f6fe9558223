// Package envutil reads typed configuration values from environment variables.
package envutil

import (
	"os"
	"strconv"
	"strings"
)

// Option is a function which modifies a Reader. It's used by
// functions like String and Bool so that the caller can easily
// provide defaults and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default allows you to provide a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the Reader's value. If f returns an error, the Reader carries it.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}

// get returns a Reader for the given environment variable key.
// Values are trimmed; a variable set to only whitespace counts as missing.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)
	val = strings.TrimSpace(val)

	return Reader[string]{
		key:     key,
		present: ok && val != "",
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), strconv.ParseBool), opts)
}
