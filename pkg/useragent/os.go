package useragent

import (
	"regexp"
	"strings"
)

// OSInfo represents operating system information
type OSInfo struct {
	Name    OS     `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// operatingSystems is in priority order: when several parts of the system
// info name different systems, the one listed first wins.
var operatingSystems = []OS{
	OSWindows,
	OSAndroid,
	OSLinux,
	OSIPadOS,
	OSIOS,
	OSMacOS,
	OSChromeOS,
	OSWebOS,
	OSAndroidTV,
	OSTizen,
	OSFireOS,
	OSPlayStation,
	OSXbox,
	OSNintendo,
}

type osAlias struct {
	Token string
	OS    OS
}

var osAliases = []osAlias{
	{Token: "Windows Phone", OS: OSWindows},
	{Token: "Windows NT", OS: OSWindows},
	{Token: "iPad", OS: OSIPadOS},
	{Token: "iPhone", OS: OSIOS},
	{Token: "Mac OS X", OS: OSMacOS},
	{Token: "Macintosh", OS: OSMacOS},
	{Token: "CrOS", OS: OSChromeOS},
	{Token: "CrKey", OS: OSAndroidTV},
	{Token: "Kindle", OS: OSFireOS},
}

// appleMobileOSPattern captures the version in "iPhone OS 10_0_1",
// "CPU OS 15_0" and similar tokens.
var appleMobileOSPattern = regexp.MustCompile(`(?:iPhone|iPad|CPU) OS ([0-9]+(?:[._][0-9]+)*)`)

var windowsVersionNames = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
}

// WindowsVersionName maps an NT kernel version to its marketing name.
// Unknown versions are returned unchanged.
func WindowsVersionName(version string) string {
	if name, ok := windowsVersionNames[version]; ok {
		return name
	}
	return version
}

// osPriority returns the position of name in operatingSystems.
func osPriority(name OS) int {
	for i, os := range operatingSystems {
		if os == name {
			return i
		}
	}
	return len(operatingSystems)
}

// matchOS returns the operating system named in part and the token that
// matched. Canonical names are checked before aliases.
func matchOS(part string) (OS, string, bool) {
	for _, os := range operatingSystems {
		if strings.Contains(part, string(os)) {
			return os, string(os), true
		}
	}
	for _, alias := range osAliases {
		if strings.Contains(part, alias.Token) {
			return alias.OS, alias.Token, true
		}
	}
	return "", "", false
}

func isAliasOf(token string, os OS) bool {
	for _, alias := range osAliases {
		if alias.Token == token && alias.OS == os {
			return true
		}
	}
	return false
}

// ParseOS extracts the operating system from the semicolon-separated system
// info segment of a user agent, i.e. the text inside the first parentheses.
func ParseOS(segment string) OSInfo {
	parts := strings.Split(segment, ";")
	isIPad := false
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if strings.Contains(parts[i], "iPad") {
			isIPad = true
		}
	}

	for _, part := range parts {
		m := appleMobileOSPattern.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		info := OSInfo{Name: OSIOS, Version: FormatVersion(m[1])}
		if isIPad {
			info.Name = OSIPadOS
		}
		return info
	}

	var info OSInfo
	for _, part := range parts {
		name, token, ok := matchOS(part)
		if !ok {
			continue
		}

		if info.Name == "" || osPriority(name) < osPriority(info.Name) {
			info.Name = name
			info.Version = ExtractVersion(part)
		}

		if info.Name != "" && info.Version == "" {
			switch {
			case isAliasOf(token, info.Name):
				info.Version = ExtractVersion(part)
			case info.Name == OSWindows && strings.Contains(part, "Windows XP"):
				info.Version = WindowsXP
			}
		}
	}

	if info.Name == OSWindows && info.Version != "" {
		info.Version = WindowsVersionName(info.Version)
	}

	return info
}
