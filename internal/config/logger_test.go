package config

import (
	"testing"

	"github.com/qdm12/log"
	"github.com/stretchr/testify/assert"
)

func Test_parseLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      log.Level
		errWrapped error
	}{
		"debug":      {s: "debug", level: log.LevelDebug},
		"info":       {s: "info", level: log.LevelInfo},
		"warning":    {s: "warning", level: log.LevelWarn},
		"error":      {s: "error", level: log.LevelError},
		"mixed_case": {s: "DeBuG", level: log.LevelDebug},
		"unknown":    {s: "trace", errWrapped: ErrLogLevelUnknown},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := parseLogLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped == nil {
				assert.Equal(t, testCase.level, level)
			}
		})
	}
}

func Test_Logger_setDefaults(t *testing.T) {
	t.Parallel()

	var logger Logger
	logger.setDefaults()

	assert.Equal(t, false, *logger.Caller)
	assert.Equal(t, log.LevelInfo, *logger.Level)
}
