package constants

const (
	// ConfigName is the base name of the config file (without extension).
	ConfigName = "config"

	// ConfigFormat is the config file format viper should expect.
	ConfigFormat = "yaml"

	// ServiceName is the canonical name used in logs and telemetry.
	ServiceName = "ecare_backend"
)
