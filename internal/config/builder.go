package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing config instead of the defaults.
// The config is copied.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithDefaultPromotion sets the promotion piece letter.
func (b *ConfigBuilder) WithDefaultPromotion(letter string) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = letter
	return b
}

// WithDrawRules sets the three draw-rule toggles.
func (b *ConfigBuilder) WithDrawRules(insufficient, fiftyMove, threefold bool) *ConfigBuilder {
	b.cfg.Rules.InsufficientMaterial = insufficient
	b.cfg.Rules.FiftyMove = fiftyMove
	b.cfg.Rules.Threefold = threefold
	return b
}

// WithUnicode controls whether boards use chess symbols.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithShowFEN controls whether FEN is printed after each move.
func (b *ConfigBuilder) WithShowFEN(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowFEN = enabled
	return b
}

// WithWorkers sets the number of self-play workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Workers = n
	return b
}

// WithGames sets the number of self-play games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = n
	return b
}

// WithMaxPlies sets the self-play ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.SelfPlay.MaxPlies = n
	return b
}

// WithSeed sets the self-play seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.Seed = seed
	return b
}
