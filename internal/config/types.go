package config

// Config is the top-level configuration, corresponding to coffeeflavours.yml.
type Config struct {
	LogLevel          string          `yaml:"log_level" koanf:"log_level"`
	LogFile           string          `yaml:"log_file" koanf:"log_file"`
	ExclusiveOverlays bool            `yaml:"exclusive_overlays" koanf:"exclusive_overlays"`
	Animations        bool            `yaml:"animations" koanf:"animations"`
	FrameRate         int             `yaml:"frame_rate" koanf:"frame_rate"`
	StartCoffee       string          `yaml:"start_coffee" koanf:"start_coffee"`
	Telemetry         TelemetryConfig `yaml:"telemetry" koanf:"telemetry"`
}

// TelemetryConfig holds tracing settings. The exporter endpoint itself comes
// from the standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name" koanf:"service_name"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Animations: true,
		FrameRate:  60,
		Telemetry: TelemetryConfig{
			ServiceName: "coffeeflavours",
		},
	}
}
