package config

// Strategy defaults. A zero timeout in the configuration selects these.
const (
	DefaultToastTimeout = 10
	DefaultPopupTimeout = 60
	DefaultAppName      = "Claude Code"
	DefaultStrategy     = "toast"
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"strategy":   DefaultStrategy,
		"timeout":    0,
		"app_name":   DefaultAppName,
		"assets_dir": "",
		"debug":      false,
	}
}
