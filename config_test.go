package disnes

import "testing"

func TestDefaultAnalysisConfig(t *testing.T) {
	cfg := DefaultAnalysisConfig()

	if !cfg.UseNMI || !cfg.UseReset || !cfg.UseIRQ {
		t.Errorf("all three interrupt vectors should be enabled by default: %+v", cfg)
	}
	if cfg.AllowBRK || cfg.AllowCLV || cfg.AllowSED {
		t.Errorf("BRK/CLV/SED should be forbidden by default: %+v", cfg)
	}
}

func TestConfigAnalysisAccessor(t *testing.T) {
	want := AnalysisConfig{UseNMI: true, AllowBRK: true}
	c := Config{analysis: want}

	if got := c.Analysis(); got != want {
		t.Errorf("Config.Analysis() = %+v, want %+v", got, want)
	}
}
