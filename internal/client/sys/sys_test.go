package sys

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleDialog_InfoAndError(t *testing.T) {
	var out bytes.Buffer
	d := NewConsoleDialog(strings.NewReader(""), &out)
	ctx := context.Background()

	require.NoError(t, d.Info(ctx, "hello"))
	require.NoError(t, d.Error(ctx, "broken"))

	require.Contains(t, out.String(), "[info] hello")
	require.Contains(t, out.String(), "[error] broken")
}

func TestConsoleDialog_ConfirmAndAsk(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"ok\n", true},
		{"n\n", false},
		{"whatever\n", false},
	}

	for _, tc := range tests {
		var out bytes.Buffer
		d := NewConsoleDialog(strings.NewReader(tc.input), &out)

		got, err := d.Ask(context.Background(), "proceed?")
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestConsoleDialog_SelectFile(t *testing.T) {
	var out bytes.Buffer
	d := NewConsoleDialog(strings.NewReader("/tmp/report.pdf\n"), &out)

	path, err := d.SelectFile(context.Background(), "Pick a file")
	require.NoError(t, err)
	require.Equal(t, "/tmp/report.pdf", path)
	require.Contains(t, out.String(), "Pick a file")
}

func TestNullWindow_StateTracking(t *testing.T) {
	w := NewNullWindow()
	ctx := context.Background()

	require.True(t, w.Visible)

	require.NoError(t, w.SetTitle(ctx, "moonui"))
	require.Equal(t, "moonui", w.Title)

	require.NoError(t, w.ToggleMaximize(ctx))
	require.True(t, w.Maximized)
	require.NoError(t, w.ToggleMaximize(ctx))
	require.False(t, w.Maximized)

	require.NoError(t, w.Hide(ctx))
	require.False(t, w.Visible)
	require.NoError(t, w.Show(ctx))
	require.True(t, w.Visible)

	require.NoError(t, w.SetAlwaysOnTop(ctx, true))
	require.True(t, w.AlwaysOnTop)
}

func TestMemoryClipboard_RoundTrip(t *testing.T) {
	c := NewMemoryClipboard()
	ctx := context.Background()

	text, err := c.ReadText(ctx)
	require.NoError(t, err)
	require.Empty(t, text)

	require.NoError(t, c.WriteText(ctx, "copied"))
	text, err = c.ReadText(ctx)
	require.NoError(t, err)
	require.Equal(t, "copied", text)
}

func TestDescribeOS_FieldsPopulated(t *testing.T) {
	info := DescribeOS()
	require.NotEmpty(t, info.Platform)
	require.NotEmpty(t, info.Arch)
}
