package font

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	parserName   string
	nameOverride string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend by name.
// The default is "sfnt", which uses golang.org/x/image/font/opentype.
// Custom backends can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithName overrides the family name reported by the Source.
// By default the name is read from the font's name table.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.nameOverride = name
	}
}
