package config

import (
	"git.home.luguber.info/inful/docfrag/internal/document"
	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
)

// Validate checks enum-valued settings. Unset values are accepted and fall
// back to their defaults.
func (c *Config) Validate() error {
	if _, err := document.ParseFormat(c.Output.Format); err != nil {
		return derrors.ConfigInvalid("output.format", err.Error())
	}
	if _, err := logLevelNormalizer.Parse(c.Logging.Level); err != nil {
		return derrors.ConfigInvalid("logging.level", err.Error())
	}
	if _, err := logFormatNormalizer.Parse(c.Logging.Format); err != nil {
		return derrors.ConfigInvalid("logging.format", err.Error())
	}
	if c.Output.Directory == "" {
		return derrors.ConfigInvalid("output.directory", "must not be empty")
	}
	return nil
}
