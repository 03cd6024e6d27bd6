package pas2cpp

import "io"

// Config holds options for a translation run.
type Config struct {
	// Verbose enables progress diagnostics (token/AST summary banners)
	// written to Output as the translation proceeds (§6).
	Verbose bool

	// Output receives verbose diagnostics. If nil, they are discarded.
	Output io.Writer
}

func (c *Config) output() io.Writer {
	if c == nil || c.Output == nil {
		return io.Discard
	}
	return c.Output
}

func (c *Config) verbose() bool {
	return c != nil && c.Verbose
}
