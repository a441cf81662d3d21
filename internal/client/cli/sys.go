package cli

import (
	"context"
	"fmt"

	"github.com/moonui/moonui/internal/client/sys"
)

func describePlatform() string {
	info := sys.DescribeOS()
	if info.Hostname == "" {
		return info.Platform + "/" + info.Arch
	}
	return fmt.Sprintf("%s/%s on %s", info.Platform, info.Arch, info.Hostname)
}

// Goto navigates the in-app router, letting the guard redirect as needed,
// and reports where the user actually landed.
func (a *App) Goto(ctx context.Context, path string) error {
	landed, err := a.router.Navigate(path)
	if err != nil {
		return a.dialog.Error(ctx, fmt.Sprintf("cannot navigate to %s: %v", path, err))
	}
	if landed.Path != path {
		return a.dialog.Info(ctx, fmt.Sprintf("redirected to %s", landed.Path))
	}
	return a.dialog.Info(ctx, fmt.Sprintf("now at %s", landed.Path))
}

// Copy puts text on the clipboard.
func (a *App) Copy(ctx context.Context, text string) error {
	if err := a.clipboard.WriteText(ctx, text); err != nil {
		return a.dialog.Error(ctx, "clipboard write failed: "+err.Error())
	}
	return a.dialog.Info(ctx, "copied")
}

// Paste prints the clipboard contents.
func (a *App) Paste(ctx context.Context) error {
	text, err := a.clipboard.ReadText(ctx)
	if err != nil {
		return a.dialog.Error(ctx, "clipboard read failed: "+err.Error())
	}
	return a.dialog.Info(ctx, text)
}

// OSDescribe prints the host platform descriptor.
func (a *App) OSDescribe(ctx context.Context) error {
	return a.dialog.Info(ctx, describePlatform())
}

// Open hands a URL to the operating system's default handler.
func (a *App) Open(ctx context.Context, url string) error {
	if err := a.opener.OpenURL(ctx, url); err != nil {
		return a.dialog.Error(ctx, "failed to open "+url+": "+err.Error())
	}
	return nil
}

// Ping probes the backend through the bearer-injecting HTTP client.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Get(ctx, "/ping", nil); err != nil {
		return err
	}
	return a.dialog.Info(ctx, "backend reachable")
}

// SetTitle updates the window title.
func (a *App) SetTitle(ctx context.Context, title string) error {
	return a.window.SetTitle(ctx, title)
}
