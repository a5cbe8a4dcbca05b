package useragent

import (
	"strings"
)

// BrowserInfo represents browser information
type BrowserInfo struct {
	Name    Browser `json:"name,omitempty"`
	Version string  `json:"version,omitempty"`
	Major   string  `json:"major,omitempty"`
}

// browserAlias maps a product token found in the UA to a canonical browser.
type browserAlias struct {
	Token   string
	Browser Browser
}

// Browser aliases in order of checking priority. Aliases win over the plain
// browser names, so "CriOS" is reported as Chrome and "Edg" as Edge even though
// those UAs also mention Safari or Chrome.
var browserAliases = []browserAlias{
	{Token: "CriOS", Browser: BrowserChrome},
	{Token: "FxiOS", Browser: BrowserFirefox},
	{Token: "MSIE", Browser: BrowserIE},
	{Token: "IE", Browser: BrowserIE},
	{Token: "Trident", Browser: BrowserIE},
	{Token: "Edg", Browser: BrowserEdge},
	{Token: "OPR", Browser: BrowserOpera},
	{Token: "SamsungBrowser", Browser: BrowserSamsung},
	{Token: "UCBrowser", Browser: BrowserUC},
}

// Literal browser names, checked only when no alias matched.
// Silk comes first because Amazon devices also advertise Chrome and Safari.
var browserNames = []Browser{
	BrowserSilk,
	BrowserChrome,
	BrowserFirefox,
	BrowserSafari,
	BrowserEdge,
	BrowserOpera,
	BrowserIE,
	BrowserSamsung,
	BrowserUC,
	BrowserVivaldi,
	BrowserBrave,
}

const operaVersionToken = "Version/"

// matchBrowser returns the canonical browser and the exact token that
// identified it.
func matchBrowser(ua string) (Browser, string, bool) {
	for _, alias := range browserAliases {
		if strings.Contains(ua, alias.Token) {
			return alias.Browser, alias.Token, true
		}
	}

	for _, name := range browserNames {
		if strings.Contains(ua, string(name)) {
			return name, string(name), true
		}
	}

	return "", "", false
}

// versionAfterToken looks at the first occurrence of token and, if it is
// immediately followed by a slash, extracts the version from the remainder.
// The second result reports whether the slash was present, even when no
// version could be extracted from what follows it.
func versionAfterToken(ua, token string) (string, bool) {
	idx := strings.Index(ua, token)
	if idx == -1 {
		return "", false
	}
	rest := ua[idx+len(token):]
	if !strings.HasPrefix(rest, "/") {
		return "", false
	}
	return ExtractVersion(rest[1:]), true
}

func (b *BrowserInfo) setVersion(version string) {
	b.Version = version
	if version != "" {
		b.Major = majorVersion(version)
	}
}

// ParseBrowser identifies the browser family and version in a full user agent
// string. Unrecognized browsers yield a zero BrowserInfo.
func ParseBrowser(ua string) BrowserInfo {
	var info BrowserInfo

	name, token, ok := matchBrowser(ua)
	if !ok {
		return info
	}
	info.Name = name

	version, found := versionAfterToken(ua, token)
	if !found {
		version, found = versionAfterToken(ua, string(name))
	}
	if found {
		info.setVersion(version)
	}

	// Presto-based Opera reports a frozen "Opera/9.80" and the real version
	// in a trailing "Version/" token.
	if name == BrowserOpera {
		if idx := strings.Index(ua, operaVersionToken); idx != -1 {
			if v := ExtractVersion(ua[idx+len(operaVersionToken):]); v != "" {
				info.setVersion(v)
			}
		}
	}

	return info
}
