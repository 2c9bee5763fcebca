package config

// Logger component tags
const (
	LogComponentApp     = "APP"
	LogComponentService = "MAP-SERVICE"
)
