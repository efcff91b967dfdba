package config

import (
	"github.com/sirupsen/logrus"
)

// Config carries the settings shared by the solver packages and the
// command line front end.
type Config struct {
	Logger  *logrus.Logger
	Verbose bool
}

// New returns a configuration with a default logger.
func New() *Config {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	return &Config{
		Logger: logger,
	}
}
