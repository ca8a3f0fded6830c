// Package config defines the application's configuration structure and the
// logic for loading it from environment variables and optional config files.
// Configuration is loaded once at process start and passed by injection;
// nothing reads the environment after startup.
package config
