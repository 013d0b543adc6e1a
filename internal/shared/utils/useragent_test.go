package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name       string
		userAgent  string
		deviceType string
		browser    string
		os         string
	}{
		{
			name:       "windows chrome",
			userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			deviceType: DeviceDesktop,
			browser:    "Chrome",
			os:         "Windows 10",
		},
		{
			name:       "mac firefox",
			userAgent:  "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:120.0) Gecko/20100101 Firefox/120.0",
			deviceType: DeviceDesktop,
			browser:    "Firefox",
			os:         "macOS",
		},
		{
			name:       "iphone safari",
			userAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			deviceType: DeviceMobile,
			browser:    "Safari",
			os:         "iOS",
		},
		{
			name:       "ipad",
			userAgent:  "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
			deviceType: DeviceTablet,
			browser:    "Safari",
			os:         "iOS",
		},
		{
			name:       "android chrome",
			userAgent:  "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			deviceType: DeviceMobile,
			browser:    "Chrome",
			os:         "Android",
		},
		{
			name:       "edge",
			userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
			deviceType: DeviceDesktop,
			browser:    "Edge",
			os:         "Windows 10",
		},
		{
			name:       "empty",
			userAgent:  "",
			deviceType: DeviceUnknown,
			browser:    "Unknown",
			os:         "Unknown",
		},
		{
			name:       "gibberish",
			userAgent:  "curl/8.4.0",
			deviceType: DeviceUnknown,
			browser:    "Unknown",
			os:         "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseUserAgent(tt.userAgent)
			assert.Equal(t, tt.deviceType, info.DeviceType)
			assert.Equal(t, tt.browser, info.Browser)
			assert.Equal(t, tt.os, info.OS)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}
