package config

import "errors"

const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	// Level is the minimum level that gets logged, one of the *_LEVEL
	// constants.
	Level int

	// TimeFormat is the layout used for log timestamps.
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return errors.New("log level must be between DEBUG_LEVEL and ERROR_LEVEL")
	}
	if c.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	return nil
}
