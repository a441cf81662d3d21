// Package sys abstracts the host facilities a webview-shell app normally
// gets from its runtime: dialogs, window control, clipboard, OS and path
// queries, and opening external resources. Application code depends on
// these interfaces; the concrete implementations here are local stand-ins
// usable in a terminal or in tests, and a real shell can substitute its own.
package sys

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Dialog shows prompts to the user.
type Dialog interface {
	Info(ctx context.Context, content string) error
	Error(ctx context.Context, content string) error
	// Confirm asks for OK/Cancel.
	Confirm(ctx context.Context, content string) (bool, error)
	// Ask asks a yes/no question.
	Ask(ctx context.Context, content string) (bool, error)
	// SelectFile prompts for an existing file path.
	SelectFile(ctx context.Context, title string) (string, error)
	// SaveFile prompts for a destination file path.
	SaveFile(ctx context.Context, title string) (string, error)
}

// ConsoleDialog renders dialogs on a terminal.
type ConsoleDialog struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsoleDialog(r io.Reader, w io.Writer) *ConsoleDialog {
	return &ConsoleDialog{reader: bufio.NewReader(r), out: w}
}

func (d *ConsoleDialog) Info(ctx context.Context, content string) error {
	_, err := fmt.Fprintf(d.out, "[info] %s\n", content)
	return err
}

func (d *ConsoleDialog) Error(ctx context.Context, content string) error {
	_, err := fmt.Fprintf(d.out, "[error] %s\n", content)
	return err
}

func (d *ConsoleDialog) Confirm(ctx context.Context, content string) (bool, error) {
	return d.yesNo(content + " [ok/cancel]")
}

func (d *ConsoleDialog) Ask(ctx context.Context, content string) (bool, error) {
	return d.yesNo(content + " [y/n]")
}

func (d *ConsoleDialog) SelectFile(ctx context.Context, title string) (string, error) {
	return d.prompt(title + " (path to open)")
}

func (d *ConsoleDialog) SaveFile(ctx context.Context, title string) (string, error) {
	return d.prompt(title + " (path to save)")
}

func (d *ConsoleDialog) yesNo(prompt string) (bool, error) {
	answer, err := d.prompt(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "ok":
		return true, nil
	default:
		return false, nil
	}
}

func (d *ConsoleDialog) prompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(d.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := d.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
