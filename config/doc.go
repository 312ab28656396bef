// Package config resolves the application configuration: static archive
// path and realtime feed URLs, from config.yml plus environment overrides.
package config
