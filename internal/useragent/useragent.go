package useragent

import (
	"strings"

	"github.com/mssola/useragent"

	"linkshortener/internal/domain"
)

const unknown = "Other"

var desktopPlatforms = map[string]bool{
	"Windows":   true,
	"Macintosh": true,
	"X11":       true,
}

// Parser classifies raw User-Agent headers.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(raw string) domain.ClientInfo {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.ClientInfo{Browser: unknown, OS: unknown, Device: unknown}
	}

	ua := useragent.New(raw)
	browser, browserVersion := ua.Browser()
	osInfo := ua.OSInfo()
	platform := ua.Platform()

	info := domain.ClientInfo{
		Browser:        orUnknown(browser),
		BrowserVersion: browserVersion,
		OS:             orUnknown(osInfo.Name),
		OSVersion:      osInfo.Version,
		IsBot:          ua.Bot(),
	}

	android := strings.Contains(raw, "Android")
	switch {
	case info.IsBot:
		info.Device = "Spider"
	case platform == "iPad" || (android && !strings.Contains(raw, "Mobile")):
		info.IsTablet = true
	case platform == "iPhone" || platform == "iPod" || android:
		info.IsMobile = true
	case desktopPlatforms[platform] || strings.Contains(raw, "CrOS"):
		info.IsPC = true
	case ua.Mobile():
		info.IsMobile = true
	}

	if info.Device == "" {
		info.Device = device(platform, android, info)
	}
	return info
}

func device(platform string, android bool, info domain.ClientInfo) string {
	switch {
	case platform == "iPhone" || platform == "iPad" || platform == "iPod":
		return platform
	case android:
		return "Generic Android"
	case info.IsPC:
		return platform
	default:
		return unknown
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
