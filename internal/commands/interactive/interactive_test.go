package interactive

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/config"
	apperrors "github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/logger"
	"github.com/thomas-vilte/spicalc/internal/tui"
	"github.com/urfave/cli/v3"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setupInteractiveTest(t *testing.T, run Runner) (*cli.Command, *config.Config) {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cfg := &config.Config{Language: "en"}
	cmd := NewInteractiveCommandFactory(catalog.Static(cat)).WithRunner(run).CreateCommand(translations, cfg)
	return &cli.Command{Commands: []*cli.Command{cmd}}, cfg
}

func TestInteractiveCommand(t *testing.T) {
	t.Run("should start the calculator on the requested branch", func(t *testing.T) {
		// Arrange
		var got tui.Model
		app, _ := setupInteractiveTest(t, func(_ context.Context, m tea.Model) (tea.Model, error) {
			got = m.(tui.Model)
			return m, nil
		})

		// Act
		err := app.Run(context.Background(), []string{"spi-calc", "interactive", "-b", "ECE"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "ECE", got.Report().Branch)
		assert.Equal(t, "1", got.Report().Semester)
	})

	t.Run("should wrap terminal failures", func(t *testing.T) {
		app, _ := setupInteractiveTest(t, func(_ context.Context, m tea.Model) (tea.Model, error) {
			return m, errors.New("no tty")
		})

		err := app.Run(context.Background(), []string{"spi-calc", "i"})

		assert.ErrorIs(t, err, apperrors.ErrTerminal)
	})

	t.Run("should refuse to watch the embedded catalog", func(t *testing.T) {
		app, _ := setupInteractiveTest(t, func(_ context.Context, m tea.Model) (tea.Model, error) {
			t.Fatal("runner must not be called")
			return m, nil
		})

		err := app.Run(context.Background(), []string{"spi-calc", "interactive", "--watch"})

		assert.ErrorIs(t, err, apperrors.ErrCatalogWatchEmbedded)
	})

	t.Run("should wire watcher reloads into the model", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "courses.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"CSE": {"1": []}}`), 0644))

		var init tea.Cmd
		app, cfg := setupInteractiveTest(t, func(_ context.Context, m tea.Model) (tea.Model, error) {
			init = m.Init()
			return m, nil
		})
		cfg.CatalogPath = path

		// Act
		err := app.Run(context.Background(), []string{"spi-calc", "interactive", "-w"})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, init)

		done := make(chan tea.Msg, 1)
		go func() { done <- init() }()
		select {
		case msg := <-done:
			assert.Nil(t, msg)
		case <-time.After(2 * time.Second):
			t.Fatal("reload command still waiting after the watcher closed")
		}
	})

	t.Run("should warn about an unknown branch", func(t *testing.T) {
		// Arrange
		var logs bytes.Buffer
		ctx := logger.WithLogger(context.Background(), logger.New(&logs, false, false))
		var got tui.Model
		app, _ := setupInteractiveTest(t, func(_ context.Context, m tea.Model) (tea.Model, error) {
			got = m.(tui.Model)
			return m, nil
		})

		// Act
		err := app.Run(ctx, []string{"spi-calc", "interactive", "-b", "XYZ"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "Branch 'XYZ' is not in the catalog")
		assert.True(t, got.Report().Empty)
	})

	t.Run("should warn about an unknown configured branch", func(t *testing.T) {
		var logs bytes.Buffer
		ctx := logger.WithLogger(context.Background(), logger.New(&logs, false, false))
		app, cfg := setupInteractiveTest(t, func(_ context.Context, m tea.Model) (tea.Model, error) {
			return m, nil
		})
		cfg.DefaultBranch = "QQ"

		err := app.Run(ctx, []string{"spi-calc", "interactive"})

		require.NoError(t, err)
		assert.Contains(t, logs.String(), "Branch 'QQ' is not in the catalog")
	})
}
