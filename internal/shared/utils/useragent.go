package utils

import "strings"

// DeviceInfo is the coarse device classification recorded on a session.
type DeviceInfo struct {
	DeviceType string
	Browser    string
	OS         string
}

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceUnknown = "unknown"
)

// ParseUserAgent derives a coarse device type, browser and OS label from a
// User-Agent header. The classification is intentionally shallow: it feeds
// the session audit trail, not feature detection.
func ParseUserAgent(userAgent string) DeviceInfo {
	ua := strings.ToLower(userAgent)

	info := DeviceInfo{
		DeviceType: DeviceUnknown,
		Browser:    "Unknown",
		OS:         "Unknown",
	}
	if userAgent == "" {
		return info
	}

	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		info.DeviceType = DeviceTablet
	case containsAny(ua, "mobile", "android", "iphone", "ipod", "blackberry", "iemobile", "opera mini"):
		info.DeviceType = DeviceMobile
	case containsAny(ua, "windows", "macintosh", "linux", "x11"):
		info.DeviceType = DeviceDesktop
	}

	switch {
	case strings.Contains(ua, "edg"):
		info.Browser = "Edge"
	case strings.Contains(ua, "opr") || strings.Contains(ua, "opera"):
		info.Browser = "Opera"
	case strings.Contains(ua, "chrome"):
		info.Browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		info.Browser = "Firefox"
	case strings.Contains(ua, "safari"):
		info.Browser = "Safari"
	}

	switch {
	case strings.Contains(ua, "windows nt 10"):
		info.OS = "Windows 10"
	case strings.Contains(ua, "windows"):
		info.OS = "Windows"
	case strings.Contains(ua, "android"):
		info.OS = "Android"
	case containsAny(ua, "iphone", "ipad", "ipod"):
		info.OS = "iOS"
	case strings.Contains(ua, "mac os x"):
		info.OS = "macOS"
	case strings.Contains(ua, "linux"):
		info.OS = "Linux"
	}

	return info
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
