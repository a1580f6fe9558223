package stream_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"iter"
	"log/slog"
	"slices"
	"testing"

	"github.com/amp-labs/amp-collate/collate"
	"github.com/amp-labs/amp-collate/compare"
	"github.com/amp-labs/amp-collate/logger"
	"github.com/amp-labs/amp-collate/stream"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken source")

func fallible[T any](values []T, failAt int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i, v := range values {
			if i == failAt {
				var zero T

				yield(zero, errBroken)

				return
			}

			if !yield(v, nil) {
				return
			}
		}
	}
}

func collect2[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T

	for v, err := range seq {
		if err != nil {
			return out, err
		}

		out = append(out, v)
	}

	return out, nil
}

func feed[T any](values []T) <-chan T {
	ch := make(chan T)

	go func() {
		defer close(ch)

		for _, v := range values {
			ch <- v
		}
	}()

	return ch
}

func drain[T any](ch <-chan T) []T {
	var out []T
	for v := range ch {
		out = append(out, v)
	}

	return out
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right []int
		expected    []int
	}{
		{
			name:     "interleaved with shared values",
			left:     []int{1, 3, 5, 7, 8, 9, 20},
			right:    []int{2, 4, 6, 8, 9, 10, 11, 12},
			expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 20},
		},
		{name: "empty left", right: []int{1, 2}, expected: []int{1, 2}},
		{name: "empty right", left: []int{1, 2}, expected: []int{1, 2}},
		{name: "both empty"},
		{
			name:     "duplicates within one side are kept",
			left:     []int{1, 1, 2},
			right:    []int{1, 3},
			expected: []int{1, 1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(stream.Merge(compare.Natural[int](),
				slices.Values(tt.left), slices.Values(tt.right)))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergeKeepsLeftOnTie(t *testing.T) {
	t.Parallel()

	type tagged struct {
		key  int
		side string
	}

	byKey := compare.By(func(v tagged) int { return v.key }, compare.Natural[int]())
	left := []tagged{{1, "l"}, {2, "l"}}
	right := []tagged{{2, "r"}, {3, "r"}}

	got := slices.Collect(stream.Merge(byKey, slices.Values(left), slices.Values(right)))
	assert.Equal(t, []tagged{{1, "l"}, {2, "l"}, {3, "r"}}, got)
}

func TestMergeStopsEarly(t *testing.T) {
	t.Parallel()

	var got []int

	for v := range stream.Merge(compare.Natural[int](), slices.Values([]int{1, 3, 5}), slices.Values([]int{2, 4})) {
		if v > 3 {
			break
		}

		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMergeRows(t *testing.T) {
	t.Parallel()

	left := [][]int{{1}, {1, 2}, {3}}
	right := [][]int{{1, 2}, {2}, {3, 0}}

	got := slices.Collect(stream.Merge[[]int](collate.Default[int](), slices.Values(left), slices.Values(right)))
	assert.Equal(t, [][]int{{1}, {1, 2}, {2}, {3}, {3, 0}}, got)
}

func TestMergeReversed(t *testing.T) {
	t.Parallel()

	desc := compare.Reverse(compare.Natural[int]())
	got := slices.Collect(stream.Merge(desc, slices.Values([]int{9, 5, 1}), slices.Values([]int{6, 5, 2})))
	assert.Equal(t, []int{9, 6, 5, 2, 1}, got)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right []int
		expected    []int
	}{
		{
			name:     "removes shared values",
			left:     []int{1, 3, 5, 7, 8, 9, 20},
			right:    []int{2, 4, 5, 6, 8, 9},
			expected: []int{1, 3, 7, 20},
		},
		{name: "empty right", left: []int{1, 2}, expected: []int{1, 2}},
		{name: "empty left", right: []int{1, 2}},
		{name: "right covers left", left: []int{2, 4}, right: []int{1, 2, 3, 4, 5}},
		{
			name:     "each right value cancels once",
			left:     []int{1, 1, 1},
			right:    []int{1},
			expected: []int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(stream.Diff(compare.Natural[int](),
				slices.Values(tt.left), slices.Values(tt.right)))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTryMerge(t *testing.T) {
	t.Parallel()

	c := compare.Natural[int]()

	got, err := collect2(stream.TryMerge(c,
		fallible([]int{1, 3, 5, 7, 8, 9, 20}, -1), fallible([]int{2, 4, 6, 8, 9, 10, 11, 12}, -1)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 20}, got)

	got, err = collect2(stream.TryMerge(c, fallible([]int{1, 3, 5}, -1), fallible([]int{2, 4, 6}, 2)))
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = collect2(stream.TryMerge(c, fallible([]int{1, 3, 5}, 0), fallible([]int{2}, -1)))
	require.ErrorIs(t, err, errBroken)
	assert.Empty(t, got)
}

func TestTryDiff(t *testing.T) {
	t.Parallel()

	c := compare.Natural[int]()

	got, err := collect2(stream.TryDiff(c,
		fallible([]int{1, 3, 5, 7, 8, 9, 20}, -1), fallible([]int{2, 4, 5, 6, 8, 9}, -1)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 7, 20}, got)

	got, err = collect2(stream.TryDiff(c, fallible([]int{1, 3, 5, 7}, 3), fallible([]int{3}, -1)))
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, []int{1, 5}, got)

	got, err = collect2(stream.TryDiff(c, fallible([]int{1, 2}, -1), fallible([]int{0, 5}, 1)))
	require.ErrorIs(t, err, errBroken)
	assert.Empty(t, got)
}

func TestMergeChan(t *testing.T) {
	t.Parallel()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))

	out := stream.MergeChan(ctx, compare.Natural[int](),
		feed([]int{1, 3, 5, 7, 8, 9, 20}), feed([]int{2, 4, 6, 8, 9, 10, 11, 12}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 20}, drain(out))
}

func TestDiffChan(t *testing.T) {
	t.Parallel()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))

	out := stream.DiffChan(ctx, compare.Natural[int](),
		feed([]int{1, 3, 5, 7, 8, 9, 20}), feed([]int{2, 4, 5, 6, 8, 9}))
	assert.Equal(t, []int{1, 3, 7, 20}, drain(out))
}

func TestMergeChanCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(logger.WithLogger(t.Context(), slogt.New(t)))

	// inputs that never close
	left, right := make(chan int), make(chan int)

	out := stream.MergeChan(ctx, compare.Natural[int](), left, right)

	cancel()

	// the output must close even though neither input does
	for range out { //nolint:revive
	}
}

func TestDiffChanCancelledLogsSubsystem(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithCancel(logger.WithLogger(t.Context(), base))

	out := stream.DiffChan(ctx, compare.Natural[int](), make(chan int), make(chan int))

	cancel()

	assert.Empty(t, drain(out))

	record := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "collated stream cancelled", record["msg"])
	assert.Equal(t, stream.Subsystem, record["subsystem"])
	assert.Equal(t, "diff", record["op"])
}
