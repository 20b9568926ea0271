// Package config handles transit-check configuration loading and validation.
//
// Configuration is loaded from config.yml (or the file named by
// TRANSIT_CHECK_CONFIG) and validated using struct tags. A .env file in the
// working directory is applied to the environment first. Several graph
// sources may be listed and selected by name.
package config
