package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{level: "silent", expected: gormlogger.Silent},
		{level: "error", expected: gormlogger.Error},
		{level: "warn", expected: gormlogger.Warn},
		{level: "info", expected: gormlogger.Info},
		{level: "INFO", expected: gormlogger.Info},
		{level: "", expected: gormlogger.Warn},
		{level: "debug", expected: gormlogger.Warn},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLogLevel(tc.level))
		})
	}
}

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     "3306",
		User:     "ordersms",
		Password: "secret",
		Name:     "ordersms",
	}

	assert.Equal(t,
		"ordersms:secret@tcp(localhost:3306)/ordersms?charset=utf8mb4&parseTime=True&loc=Local",
		buildDSN(cfg))
}
