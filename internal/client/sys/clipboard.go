package sys

import "context"

// Clipboard reads and writes the system clipboard. MemoryClipboard is a
// process-local substitute used when no host clipboard is wired in.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
	ReadText(ctx context.Context) (string, error)
}

type MemoryClipboard struct {
	text string
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) WriteText(ctx context.Context, text string) error {
	c.text = text
	return nil
}

func (c *MemoryClipboard) ReadText(ctx context.Context) (string, error) {
	return c.text, nil
}
