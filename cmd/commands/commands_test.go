package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/filterlist/internal/cli"
	"github.com/pluqqy/filterlist/pkg/examples"
	"github.com/pluqqy/filterlist/pkg/files"
	"github.com/pluqqy/filterlist/pkg/models"
	"github.com/pluqqy/filterlist/pkg/tui"
)

// setupCommandTest moves into an empty directory and captures message output
func setupCommandTest(t *testing.T) (dir string, messages *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()
	t.Chdir(dir)

	messages = &bytes.Buffer{}
	restore := cli.SetOutput(messages, messages)
	t.Cleanup(restore)
	t.Cleanup(func() { cli.SetGlobalFlags(false, false) })
	return dir, messages
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFilterCommand(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, examples.Install(files.DefaultItemsFile, false))

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "name substring",
			args:     []string{"filter", "apple"},
			contains: []string{"Apple", "Pineapple", "Showing 2 of 5 items"},
			excludes: []string{"Banana", "Orange"},
		},
		{
			name:     "description match",
			args:     []string{"filter", "citrus"},
			contains: []string{"Orange", "Showing 1 of 5 items"},
			excludes: []string{"Apple"},
		},
		{
			name:     "case insensitive",
			args:     []string{"filter", "BANANA"},
			contains: []string{"Banana", "Showing 1 of 5 items"},
		},
		{
			name:     "arguments are joined",
			args:     []string{"filter", "tough", "bright"},
			contains: []string{"Orange", "Showing 1 of 5 items"},
		},
		{
			name:     "no matches",
			args:     []string{"filter", "zzz"},
			contains: []string{noMatchesMessage},
			excludes: []string{"Showing"},
		},
		{
			name:     "empty term",
			args:     []string{"filter"},
			contains: []string{"Apple", "Grape", "Showing 5 of 5 items"},
		},
		{
			name:     "list",
			args:     []string{"list"},
			contains: []string{"Apple", "Pineapple", "Showing 5 of 5 items"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFilterCommand_JSON(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, examples.Install(files.DefaultItemsFile, false))

	out, err := execute(t, "filter", "apple", "-o", "json")
	require.NoError(t, err)

	var result FilterResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "apple", result.Term)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, "Apple", result.Items[0].Name)
	assert.Equal(t, "Pineapple", result.Items[1].Name)
}

func TestFilterCommand_YAMLNoMatches(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, examples.Install(files.DefaultItemsFile, false))

	out, err := execute(t, "filter", "zzz", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "term: zzz")
	assert.Contains(t, out, "count: 0")
	assert.Contains(t, out, "items: []")
}

func TestFilterCommand_SampleFallback(t *testing.T) {
	_, messages := setupCommandTest(t)

	out, err := execute(t, "filter", "citrus")
	require.NoError(t, err)
	assert.Contains(t, out, "Orange")
	assert.Contains(t, messages.String(), "using sample items")
}

func TestFilterCommand_ExplicitMissingFile(t *testing.T) {
	_, _ = setupCommandTest(t)

	_, err := execute(t, "filter", "--items", "missing.yaml", "apple")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilterCommand_InvalidItems(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, os.WriteFile("dupes.yaml", []byte(`- {id: "1", name: A}
- {id: "1", name: B}
`), 0644))

	_, err := execute(t, "list", "--items", "dupes.yaml")
	assert.ErrorIs(t, err, files.ErrDuplicateID)
}

func TestFilterCommand_ConfigFile(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, files.WriteItems("fruit.json", []models.Item{
		{ID: "k", Name: "Kiwi", Description: "fuzzy"},
	}))
	require.NoError(t, os.WriteFile(files.ConfigFile, []byte("items_file: fruit.json\noutput: yaml\n"), 0644))

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Kiwi")
}

func TestCopyCommand(t *testing.T) {
	_, messages := setupCommandTest(t)
	require.NoError(t, examples.Install(files.DefaultItemsFile, false))

	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	_, err := execute(t, "copy", "3")
	require.NoError(t, err)
	assert.Equal(t, examples.SampleItems()[2].Description, copied)
	assert.Contains(t, messages.String(), `Copied description of "Orange"`)

	_, err = execute(t, "copy", "42")
	assert.ErrorContains(t, err, `no item with id "42"`)

	writeClipboard = func(string) error { return errors.New("no display") }
	_, err = execute(t, "copy", "1")
	assert.ErrorContains(t, err, "no display")
}

func TestInitCommand(t *testing.T) {
	dir, messages := setupCommandTest(t)

	_, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, messages.String(), "Wrote 5 sample items to items.yaml")

	loaded, err := files.ReadItems(filepath.Join(dir, files.DefaultItemsFile))
	require.NoError(t, err)
	assert.Equal(t, examples.SampleItems(), loaded)

	_, err = execute(t, "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, examples.ErrExists)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "init", "--force")
	assert.NoError(t, err)

	_, err = execute(t, "init", "fruit.json")
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, "fruit.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "{"))
}

func TestVersionCommand(t *testing.T) {
	_, _ = setupCommandTest(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Filterlist version test\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "Filterlist version test\n", out)
}

func TestRootCommand_LaunchesTUI(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, files.WriteItems("fruit.yaml", []models.Item{
		{ID: "k", Name: "Kiwi", Description: "fuzzy"},
		{ID: "l", Name: "Lemon", Description: "sour citrus"},
	}))

	var got *tui.App
	prev := runProgram
	runProgram = func(ctx context.Context, app *tui.App) error {
		got = app
		return nil
	}
	t.Cleanup(func() { runProgram = prev })

	_, err := execute(t, "fruit.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Kiwi", "Lemon"}, []string{got.List().Items()[0].Name, got.List().Items()[1].Name})
	assert.Equal(t, tui.StateAll, got.List().State())

	t.Run("sample items when nothing exists", func(t *testing.T) {
		got = nil
		_, err := execute(t)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, examples.SampleItems(), got.List().Items())
	})

	t.Run("watch flag", func(t *testing.T) {
		got = nil
		_, err := execute(t, "--watch", "fruit.yaml")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("program failure", func(t *testing.T) {
		runProgram = func(context.Context, *tui.App) error { return errors.New("no tty") }
		_, err := execute(t, "fruit.yaml")
		assert.ErrorContains(t, err, "no tty")
	})
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, _ = setupCommandTest(t)

	_, err := execute(t, "list", "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestRootCommand_ClosesLogAfterEveryRun(t *testing.T) {
	_, _ = setupCommandTest(t)
	require.NoError(t, examples.Install(files.DefaultItemsFile, false))

	var closed int
	prev := openLog
	openLog = func(path, level string) (*slog.Logger, func() error, error) {
		return slog.New(slog.DiscardHandler), func() error {
			closed++
			return nil
		}, nil
	}
	t.Cleanup(func() { openLog = prev })

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"successful run", []string{"list"}, false},
		{"failing run", []string{"list", "--items", "missing.yaml"}, true},
		{"failing copy", []string{"copy", "42"}, true},
		{"version", []string{"version"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed = 0
			_, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, closed)
		})
	}
}
