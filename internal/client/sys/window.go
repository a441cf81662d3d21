package sys

import "context"

// Window controls the application window. The host shell provides the real
// implementation; NullWindow stands in when there is no window to control.
type Window interface {
	Minimize(ctx context.Context) error
	ToggleMaximize(ctx context.Context) error
	Close(ctx context.Context) error
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
	Center(ctx context.Context) error
	SetTitle(ctx context.Context, title string) error
	SetAlwaysOnTop(ctx context.Context, onTop bool) error
}

// NullWindow implements Window with no-ops, remembering only the values a
// caller could later query in tests.
type NullWindow struct {
	Title       string
	AlwaysOnTop bool
	Maximized   bool
	Visible     bool
}

func NewNullWindow() *NullWindow {
	return &NullWindow{Visible: true}
}

func (w *NullWindow) Minimize(ctx context.Context) error { return nil }

func (w *NullWindow) ToggleMaximize(ctx context.Context) error {
	w.Maximized = !w.Maximized
	return nil
}

func (w *NullWindow) Close(ctx context.Context) error {
	w.Visible = false
	return nil
}

func (w *NullWindow) Show(ctx context.Context) error {
	w.Visible = true
	return nil
}

func (w *NullWindow) Hide(ctx context.Context) error {
	w.Visible = false
	return nil
}

func (w *NullWindow) Center(ctx context.Context) error { return nil }

func (w *NullWindow) SetTitle(ctx context.Context, title string) error {
	w.Title = title
	return nil
}

func (w *NullWindow) SetAlwaysOnTop(ctx context.Context, onTop bool) error {
	w.AlwaysOnTop = onTop
	return nil
}
