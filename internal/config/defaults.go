package config

// DefaultConfigPath is the config file read when --config is not given.
const DefaultConfigPath = ".catalogcheck/config.json"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"root":          ".",
		"taxonomy_path": "catalog/taxonomy.json",
		"results_path":  "catalog/resources.json",
		"no_color":      false,
	}
}
