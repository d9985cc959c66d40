package speculss

// Config controls how a Runtime tokenizes text, with the default
// implementation as NewConfig.
type Config struct {
	partitions int
}

// defaultConfig helps avoid copy/pasting the wrong defaults.
var defaultConfig = &Config{
	partitions: 4,
}

// NewConfig returns a Config initialized with defaults: WithPartitions(4).
func NewConfig() *Config {
	return defaultConfig.clone()
}

// clone ensures all fields are copied even if a future field is a pointer or map.
func (c *Config) clone() *Config {
	ret := *c
	return &ret
}

// WithPartitions sets the number of concurrent byte-range partitions
// Runtime.SpecTokenize splits its input into. Values less than 1 are
// treated as 1, which disables speculation: tokenization runs as a single
// sequential pass.
//
// Note: Runtime.Tokenize ignores this value; it always tokenizes
// sequentially. Only Runtime.SpecTokenize is affected.
func (c *Config) WithPartitions(partitions int) *Config {
	ret := c.clone()
	ret.partitions = partitions
	return ret
}
