package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// run executes the CLI against storage files inside dir.
func run(t *testing.T, dir string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append(args,
		"--todo-file", filepath.Join(dir, "items.json"),
		"--pattern-file", filepath.Join(dir, "patterns.json"),
	)
	code := Execute(full, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	res := run(t, dir, "add", "Buy milk")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "added")
	assert.Contains(t, res.stdout, "Buy milk")

	res = run(t, dir, "list")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "Buy milk")
	assert.Contains(t, res.stdout, "1.")
}

func TestAddExpandsPattern(t *testing.T) {
	dir := t.TempDir()

	res := run(t, dir, "pattern", "add", "mtg", "Meeting with team")
	require.Zero(t, res.code)

	res = run(t, dir, "add", "mtg at 3pm")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "Pattern expanded: 'mtg at 3pm' -> 'Meeting with team at 3pm'")

	res = run(t, dir, "list")
	assert.Contains(t, res.stdout, "Meeting with team at 3pm")
	assert.NotContains(t, res.stdout, "mtg at 3pm")
}

func TestAddWithoutMatchingPattern(t *testing.T) {
	dir := t.TempDir()

	res := run(t, dir, "add", "Buy groceries")
	assert.Zero(t, res.code)
	assert.NotContains(t, res.stdout, "Pattern expanded")
}

func TestListFilters(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "add", "first")
	run(t, dir, "add", "second")
	require.Zero(t, run(t, dir, "complete", "1").code)

	res := run(t, dir, "list", "--filter", "pending")
	assert.Zero(t, res.code)
	assert.NotContains(t, res.stdout, "first")
	assert.Contains(t, res.stdout, "second")

	res = run(t, dir, "list", "--filter", "completed")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "first")
	assert.NotContains(t, res.stdout, "second")

	// The shown index stays valid for the index commands.
	assert.Contains(t, run(t, dir, "list", "--filter", "pending").stdout, "2.")
}

func TestListInvalidFilter(t *testing.T) {
	res := run(t, t.TempDir(), "list", "--filter", "done")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "filter")
}

func TestCompleteAndUncomplete(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "add", "only")

	res := run(t, dir, "complete", "1")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "marked item 1 as complete")

	res = run(t, dir, "uncomplete", "1")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "marked item 1 as incomplete")

	res = run(t, dir, "list", "--filter", "pending")
	assert.Contains(t, res.stdout, "only")
}

func TestCompleteOutOfRange(t *testing.T) {
	res := run(t, t.TempDir(), "complete", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "index out of range")
}

func TestIndexMustBeANumber(t *testing.T) {
	res := run(t, t.TempDir(), "remove", "abc")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "not a number")
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "add", "only")

	res := run(t, dir, "remove", "1")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "removed")
	assert.Contains(t, res.stdout, "only")

	assert.Contains(t, run(t, dir, "list").stdout, "no items")

	res = run(t, dir, "remove", "1")
	assert.Equal(t, 1, res.code)
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "add", "first")
	run(t, dir, "add", "second")
	run(t, dir, "add", "third")
	run(t, dir, "complete", "1")
	run(t, dir, "complete", "3")

	res := run(t, dir, "clear")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "cleared 2 completed item(s)")

	list := run(t, dir, "list").stdout
	assert.Contains(t, list, "second")
	assert.NotContains(t, list, "first")
	assert.NotContains(t, list, "third")
}

func TestPatternLifecycle(t *testing.T) {
	dir := t.TempDir()

	res := run(t, dir, "pattern", "add", "mtg", "Meeting with team")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "'mtg' -> 'Meeting with team'")

	res = run(t, dir, "pattern", "list")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "'mtg'")
	assert.Contains(t, res.stdout, "'Meeting with team'")

	res = run(t, dir, "pattern", "remove", "mtg")
	assert.Zero(t, res.code)

	res = run(t, dir, "pattern", "remove", "mtg")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not found")

	assert.Contains(t, run(t, dir, "pattern", "list").stdout, "no patterns defined")
}

func TestPatternAddEmptyShortcut(t *testing.T) {
	res := run(t, t.TempDir(), "pattern", "add", "", "anything")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "shortcut")
}

func TestPatternMatch(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "pattern", "add", "mtg", "Meeting with team")
	run(t, dir, "pattern", "add", "mtg-daily", "Daily standup meeting")
	run(t, dir, "pattern", "add", "call", "Phone call with")

	res := run(t, dir, "pattern", "match", "mtg")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "'mtg'")
	assert.Contains(t, res.stdout, "'mtg-daily'")
	assert.NotContains(t, res.stdout, "'call'")
}

func TestExpandCommand(t *testing.T) {
	dir := t.TempDir()
	run(t, dir, "pattern", "add", "mtg", "Meeting with team")

	res := run(t, dir, "expand", "mtg at 3pm")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "Meeting with team at 3pm")
	assert.Empty(t, res.stderr)

	res = run(t, dir, "expand", "nothing here")
	assert.Zero(t, res.code)
	assert.Contains(t, res.stdout, "nothing here")
	assert.Contains(t, res.stderr, "no pattern matched")
}

func TestUnicodeSurvivesTheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	require.Zero(t, run(t, dir, "add", "جلسه هفتگی تیم توسعه").code)
	assert.Contains(t, run(t, dir, "list").stdout, "جلسه هفتگی تیم توسعه")

	b, err := os.ReadFile(filepath.Join(dir, "items.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "جلسه هفتگی تیم توسعه")
}

func TestCorruptTodoFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte("{broken"), 0o644))

	res := run(t, dir, "list")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "corrupt storage file")
}
