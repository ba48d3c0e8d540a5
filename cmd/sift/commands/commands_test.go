package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/cmd/sift/commands"
	"go.trai.ch/sift/internal/build"
)

type mockApp struct {
	testFunc func(ctx context.Context, args []string) error
}

func (m *mockApp) Test(ctx context.Context, args []string) error {
	if m.testFunc != nil {
		return m.testFunc(ctx, args)
	}
	return nil
}

func TestCommands_Test(t *testing.T) {
	t.Run("passes arguments through unparsed", func(t *testing.T) {
		var captured []string
		called := false

		mock := &mockApp{
			testFunc: func(_ context.Context, args []string) error {
				captured = args
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		// Tool flags like -scheme and -destination must not be eaten by cobra.
		cli.SetArgs([]string{"test", "-scheme", "App", "-destination", "generic/platform=iOS"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"-scheme", "App", "-destination", "generic/platform=iOS"}, captured)
	})

	t.Run("returns error on test failure", func(t *testing.T) {
		mock := &mockApp{
			testFunc: func(_ context.Context, _ []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"test", "-scheme", "App"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("accepts empty arguments", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			testFunc: func(_ context.Context, args []string) error {
				captured = args
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"test"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, captured)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
