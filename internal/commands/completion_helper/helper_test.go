package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/urfave/cli/v3"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := Out
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func testCommand() *cli.Command {
	return &cli.Command{
		Name: "calc",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "branch", Aliases: []string{"b"}},
			&cli.StringFlag{Name: "semester", Aliases: []string{"s"}},
		},
	}
}

func TestDefaultFlagComplete(t *testing.T) {
	buf := captureOut(t)

	DefaultFlagComplete(context.Background(), testCommand())

	assert.Equal(t, "--branch\n-b\n--semester\n-s\n", buf.String())
}

func TestCatalogComplete(t *testing.T) {
	cat, err := catalog.Parse([]byte(`{"CSE": {"1": [], "2": []}, "ECE": {"3": []}}`), catalog.FormatJSON)
	require.NoError(t, err)

	run := func(t *testing.T, args ...string) string {
		t.Helper()
		buf := captureOut(t)
		cmd := testCommand()
		cmd.Action = func(ctx context.Context, c *cli.Command) error {
			CatalogComplete(catalog.Static(cat))(ctx, c)
			return nil
		}
		require.NoError(t, cmd.Run(context.Background(), append([]string{"calc"}, args...)))
		return buf.String()
	}

	t.Run("should suggest branches when none is given", func(t *testing.T) {
		out := run(t)

		assert.Contains(t, out, "CSE\nECE\n")
		assert.Contains(t, out, "--branch")
	})

	t.Run("should suggest semesters of the given branch", func(t *testing.T) {
		out := run(t, "--branch", "CSE")

		assert.Contains(t, out, "1\n2\n")
		assert.NotContains(t, out, "ECE")
	})
}
