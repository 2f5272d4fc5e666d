package appearance

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/appearance/app/appearance/mocks"
)

func TestDefaults_String(t *testing.T) {
	t.Run("value present", func(t *testing.T) {
		runner := &mocks.RunnerMock{
			OutputFunc: func(name string, args ...string) ([]byte, error) {
				return []byte("Dark\n"), nil
			},
		}
		val, ok, err := NewDefaults(runner).String(InterfaceStyleKey)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Dark", val)

		require.Len(t, runner.OutputCalls(), 1)
		assert.Equal(t, "defaults", runner.OutputCalls()[0].Name)
		assert.Equal(t, []string{"read", "-g", "AppleInterfaceStyle"}, runner.OutputCalls()[0].Args)
	})

	t.Run("missing key is not set", func(t *testing.T) {
		runner := &mocks.RunnerMock{
			OutputFunc: func(name string, args ...string) ([]byte, error) {
				return nil, fmt.Errorf("%w: The domain/default pair of (kCFPreferencesAnyApplication, AppleInterfaceStyle) does not exist",
					ErrExitStatus)
			},
		}
		val, ok, err := NewDefaults(runner).String(InterfaceStyleKey)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("runner failure", func(t *testing.T) {
		runner := &mocks.RunnerMock{
			OutputFunc: func(name string, args ...string) ([]byte, error) {
				return nil, errors.New("exec: \"defaults\": executable file not found in $PATH")
			},
		}
		_, ok, err := NewDefaults(runner).String(InterfaceStyleKey)
		require.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, err.Error(), "failed to read preference AppleInterfaceStyle")
	})
}

func TestExecRunner(t *testing.T) {
	r := ExecRunner{}

	t.Run("run waits for exit", func(t *testing.T) {
		require.NoError(t, r.Run("sh", "-c", "exit 0"))
	})

	t.Run("run ignores exit status", func(t *testing.T) {
		require.NoError(t, r.Run("sh", "-c", "echo failed >&2; exit 3"))
	})

	t.Run("run reports launch failure", func(t *testing.T) {
		err := r.Run("/nonexistent/osascript", "-e", "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start /nonexistent/osascript")
	})

	t.Run("output", func(t *testing.T) {
		out, err := r.Output("sh", "-c", "echo Dark")
		require.NoError(t, err)
		assert.Equal(t, "Dark\n", string(out))
	})

	t.Run("output non-zero exit", func(t *testing.T) {
		_, err := r.Output("sh", "-c", "echo missing >&2; exit 1")
		require.ErrorIs(t, err, ErrExitStatus)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("output launch failure", func(t *testing.T) {
		_, err := r.Output("/nonexistent/defaults")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrExitStatus)
	})
}
