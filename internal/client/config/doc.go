// Package config loads the client configuration from layered sources:
// built-in defaults, the process environment (with an optional .env file),
// an optional JSON file named by -c/-config, and finally command-line
// flags. Each later source overrides the previous one.
package config
