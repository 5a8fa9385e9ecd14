package disnes

// AnalysisConfig is the set of options recognized by the analysis pipeline
// (spec §6). No other options are recognized; the manifest loader rejects
// unknown keys at load time.
type AnalysisConfig struct {
	UseNMI   bool `toml:"use_nmi"`
	UseReset bool `toml:"use_reset"`
	UseIRQ   bool `toml:"use_irq"`
	AllowBRK bool `toml:"allow_brk"`
	AllowCLV bool `toml:"allow_clv"`
	AllowSED bool `toml:"allow_sed"`
}

// DefaultAnalysisConfig returns the configuration the manifest loader seeds
// before decoding the TOML `config` table over it, so that omitted keys
// keep their documented defaults rather than Go's zero value.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		UseNMI:   true,
		UseReset: true,
		UseIRQ:   true,
		AllowBRK: false,
		AllowCLV: false,
		AllowSED: false,
	}
}

// Config wraps the analysis configuration parsed from a manifest.
type Config struct {
	analysis AnalysisConfig
}

// Analysis returns the wrapped AnalysisConfig.
func (c Config) Analysis() AnalysisConfig {
	return c.analysis
}
