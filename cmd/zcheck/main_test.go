package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// writeTarget creates a file with the given content in a fresh temp dir.
func writeTarget(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target")
	require.NoError(t, os.WriteFile(path, content, 0600), "failed to set up test file")
	return path
}

func TestRun_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		args         func(t *testing.T) []string
		expectedOut  string
		expectedCode int
	}{
		{
			name:         "no path argument",
			args:         func(t *testing.T) []string { return []string{} },
			expectedOut:  "ERROR: You need one argument.\n",
			expectedCode: 1,
		},
		{
			name: "two path arguments",
			args: func(t *testing.T) []string {
				return []string{writeTarget(t, []byte("z")), writeTarget(t, []byte("z"))}
			},
			expectedOut:  "ERROR: You need one argument.\n",
			expectedCode: 1,
		},
		{
			name: "non-existent file",
			args: func(t *testing.T) []string {
				return []string{filepath.Join(t.TempDir(), "missing")}
			},
			expectedOut:  "ERROR: Could not open file.\n",
			expectedCode: 1,
		},
		{
			name:         "file containing z",
			args:         func(t *testing.T) []string { return []string{writeTarget(t, []byte("z"))} },
			expectedOut:  "you win!\n",
			expectedCode: 0,
		},
		{
			name:         "file containing a",
			args:         func(t *testing.T) []string { return []string{writeTarget(t, []byte("a"))} },
			expectedOut:  "you lose!\n",
			expectedCode: 0,
		},
		{
			name:         "empty file",
			args:         func(t *testing.T) []string { return []string{writeTarget(t, []byte{})} },
			expectedOut:  "you lose!\n",
			expectedCode: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			args := tc.args(t)
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

			// --- Act ---
			code := run(out, errOut, args)

			// --- Assert ---
			require.Equal(t, tc.expectedCode, code)
			require.Equal(t, tc.expectedOut, out.String())
			require.Empty(t, errOut.String(), "nothing should be written to stderr")
		})
	}
}

func TestRun_SameFileTwice(t *testing.T) {
	t.Parallel()

	path := writeTarget(t, []byte("zap"))

	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	firstCode := run(first, &bytes.Buffer{}, []string{path})
	secondCode := run(second, &bytes.Buffer{}, []string{path})

	require.Equal(t, firstCode, secondCode)
	require.Equal(t, first.String(), second.String())
	require.Equal(t, "you win!\n", first.String())
}

func TestRun_OnlyFirstByteMatters(t *testing.T) {
	t.Parallel()

	short, long := &bytes.Buffer{}, &bytes.Buffer{}
	run(short, &bytes.Buffer{}, []string{writeTarget(t, []byte("q"))})
	run(long, &bytes.Buffer{}, []string{writeTarget(t, []byte("qzzzzzzzz"))})

	require.Equal(t, short.String(), long.String())
}

func TestRun_UnreadableFile(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	path := writeTarget(t, []byte("z"))
	require.NoError(t, os.Chmod(path, 0000))
	out := &bytes.Buffer{}

	code := run(out, &bytes.Buffer{}, []string{path})

	require.Equal(t, 1, code)
	require.Equal(t, "ERROR: Could not open file.\n", out.String())
}

func TestRun_CompletionTokenWithSecondArgument(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	code := run(out, &bytes.Buffer{}, []string{"__complete", "x"})

	require.Equal(t, 1, code)
	require.Equal(t, "ERROR: You need one argument.\n", out.String())
}
