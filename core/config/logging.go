// File: logging.go
// Title: Logger Configuration
// Description: Derives a logger from the log.level and log.format keys.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	mdwerror "github.com/msto63/texttype/core/error"
	mdwlog "github.com/msto63/texttype/core/log"
)

// Keys read by Logger
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Logger returns base adjusted by the log.level and log.format keys,
// including environment overrides. Missing keys keep the settings of base;
// a nil base means the package default logger.
func (c *Config) Logger(base *mdwlog.Logger) (*mdwlog.Logger, error) {
	logger := base
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	if c.Has(KeyLogLevel) {
		level, err := mdwlog.ParseLevel(c.GetString(KeyLogLevel))
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid log configuration").WithDetail("key", KeyLogLevel)
		}
		logger = logger.WithLevel(level)
	}

	if c.Has(KeyLogFormat) {
		format, err := mdwlog.ParseFormat(c.GetString(KeyLogFormat))
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid log configuration").WithDetail("key", KeyLogFormat)
		}
		logger = logger.WithFormat(format)
	}

	return logger, nil
}
