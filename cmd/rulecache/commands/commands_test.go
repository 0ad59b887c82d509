package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rulecache/cmd/rulecache/commands"
	"go.trai.ch/rulecache/internal/app"
)

type mockApp struct {
	global      app.GlobalOptions
	resolveFunc func(ctx context.Context, coordinates []string, opts app.ResolveOptions) error
	stats       int
	cleaned     int
}

func (m *mockApp) Configure(opts app.GlobalOptions) {
	m.global = opts
}

func (m *mockApp) Resolve(ctx context.Context, coordinates []string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, coordinates, opts)
	}
	return nil
}

func (m *mockApp) Stats(context.Context) error {
	m.stats++
	return nil
}

func (m *mockApp) Clean(context.Context) error {
	m.cleaned++
	return nil
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ResolveOptions
		var capturedCoords []string

		mock := &mockApp{
			resolveFunc: func(_ context.Context, coordinates []string, opts app.ResolveOptions) error {
				capturedOpts = opts
				capturedCoords = coordinates
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "com.example:lib:1.0", "org.acme:tool", "--refresh", "--json", "-v", "--config", "ci.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"com.example:lib:1.0", "org.acme:tool"}, capturedCoords)
		assert.Equal(t, app.ResolveOptions{Refresh: true, JSON: true}, capturedOpts)
		assert.Equal(t, app.GlobalOptions{ConfigPath: "ci.yaml", Verbose: true}, mock.global)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, []string, app.ResolveOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "g:n"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no coordinates provided", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, []string, app.ResolveOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"resolve"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("refresh and offline are exclusive", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"resolve", "g:n", "--refresh", "--offline"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Maintenance(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetArgs([]string{"stats", "--json-log", "--trace"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, 1, mock.stats)
	assert.Equal(t, app.GlobalOptions{JSONLog: true, Trace: true}, mock.global)

	cli = commands.New(mock)
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, 1, mock.cleaned)

	cli = commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "extra"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))

	g := goldie.New(t)
	g.Assert(t, "version", buf.Bytes())
}
