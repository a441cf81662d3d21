package sys

import (
	"context"
	"os/exec"
	"runtime"
)

// Opener hands a URL or filesystem path to the operating system's default
// handler.
type Opener interface {
	OpenURL(ctx context.Context, url string) error
	RevealPath(ctx context.Context, path string) error
}

// ExecOpener shells out to the platform opener command.
type ExecOpener struct{}

func NewExecOpener() *ExecOpener {
	return &ExecOpener{}
}

func (o *ExecOpener) OpenURL(ctx context.Context, url string) error {
	return o.open(ctx, url)
}

func (o *ExecOpener) RevealPath(ctx context.Context, path string) error {
	return o.open(ctx, path)
}

func (o *ExecOpener) open(ctx context.Context, target string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler"}
	default:
		name = "xdg-open"
	}

	args = append(args, target)
	return exec.CommandContext(ctx, name, args...).Start()
}
