// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is declared as plain structs with caarlos0/env tags and
// loaded through the generic Load or MustLoad helpers. Each struct type is
// parsed once per process and cached, so packages can load their own config
// independently without re-reading the environment.
package config
