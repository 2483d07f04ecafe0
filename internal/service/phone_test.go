package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wpwhiz/signalwire-woo/internal/service"
)

func TestStripUS(t *testing.T) {
	testCases := []struct {
		name     string
		phone    string
		expected string
	}{
		{name: "plus one prefix", phone: "+15551234567", expected: "5551234567"},
		{name: "bare eleven digit", phone: "15551234567", expected: "5551234567"},
		{name: "national form untouched", phone: "5551234567", expected: "5551234567"},
		{name: "number starting with one one keeps digits", phone: "+11155512345", expected: "1155512345"},
		{name: "surrounding whitespace", phone: " +15551234567 ", expected: "5551234567"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.StripUS(tc.phone))
		})
	}
}

func TestNormalizeUS(t *testing.T) {
	assert.Equal(t, "+15551234567", service.NormalizeUS("5551234567"))
	assert.Equal(t, "+15551234567", service.NormalizeUS("+15551234567"))
	assert.Equal(t, "+15551234567", service.NormalizeUS("15551234567"))
}

func TestNormalizeUS_Idempotent(t *testing.T) {
	phones := []string{"5551234567", "+15551234567", "15551234567", "+11155512345"}

	for _, phone := range phones {
		once := service.NormalizeUS(phone)
		twice := service.NormalizeUS(once)
		assert.Equal(t, once, twice, "normalizing %q twice should not change it", phone)
	}
}
