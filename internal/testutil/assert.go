// Package testutil provides shared test utilities for the chess engine.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target) holds.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		reportf(t, msgAndArgs, "expected error wrapping %v but got nil", target)
		return
	}
	if !errors.Is(err, target) {
		reportf(t, msgAndArgs, "error %v does not wrap %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertBoardEqual compares two boards and reports the differing rows as a
// line diff of their square codes.
func AssertBoardEqual(t testing.TB, got, want chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	diff := cmp.Diff(boardLines(want), boardLines(got))
	reportf(t, msgAndArgs, "board mismatch (-want +got):\n%s", diff)
}

// AssertNotations compares a list of rendered moves against the expected
// strings, in order. A nil want matches an empty list.
func AssertNotations[S fmt.Stringer](t testing.TB, got []S, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	rendered := make([]string, len(got))
	for i, s := range got {
		rendered[i] = s.String()
	}
	if diff := cmp.Diff(want, rendered, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, msgAndArgs, "notation mismatch (-want +got):\n%s", diff)
	}
}

// boardLines splits a board into one string per row.
func boardLines(b chess.Board) []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

// reportf fails the test with an optional caller supplied prefix.
func reportf(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	detail := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, detail)
		return
	}
	t.Error(detail)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
