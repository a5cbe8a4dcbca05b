package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// systemInfoPattern captures the first parenthesized group of a UA.
	systemInfoPattern = regexp.MustCompile(`\(([^)]+)\)`)

	botPattern           = regexp.MustCompile(`(?i)bot|crawl|spider|openai|http|lighthouse|scan|search`)
	developerToolPattern = regexp.MustCompile(`(?i)developer|devtools|lighthouse|postman|yaak|curl`)
)

// UserAgent contains the parsed information from a user agent string.
// Facets are computed once by Parse and are never mutually contradictory:
// a tablet is not mobile, a TV is neither tablet nor mobile, and a desktop is
// none of mobile, tablet, TV or bot.
type UserAgent struct {
	Raw     string      `json:"raw"`
	Device  DeviceInfo  `json:"device"`
	Browser BrowserInfo `json:"browser"`
	OS      OSInfo      `json:"os"`

	IsBot     bool `json:"is_bot"`
	IsChrome  bool `json:"is_chrome"`
	IsFirefox bool `json:"is_firefox"`
	IsSafari  bool `json:"is_safari"`
	IsEdge    bool `json:"is_edge"`
	IsOpera   bool `json:"is_opera"`
	IsWindows bool `json:"is_windows"`
	IsMacOS   bool `json:"is_macos"`
	IsLinux   bool `json:"is_linux"`
	IsAndroid bool `json:"is_android"`
	IsIOS     bool `json:"is_ios"`
	IsIPadOS  bool `json:"is_ipados"`
	IsMobile  bool `json:"is_mobile"`
	IsTablet  bool `json:"is_tablet"`
	IsDesktop bool `json:"is_desktop"`
	IsTV      bool `json:"is_tv"`
	IsConsole bool `json:"is_console"`

	Display string `json:"display"`
}

// String returns the human-readable display label.
func (ua UserAgent) String() string { return ua.Display }

// DeviceType collapses the facets into a single category. Bots take
// precedence, then TVs and consoles, then tablets, phones and desktops.
func (ua UserAgent) DeviceType() string {
	switch {
	case ua.IsBot:
		return DeviceTypeBot
	case ua.IsTV:
		return DeviceTypeTV
	case ua.IsConsole:
		return DeviceTypeConsole
	case ua.IsTablet:
		return DeviceTypeTablet
	case ua.IsMobile:
		return DeviceTypeMobile
	case ua.IsDesktop:
		return DeviceTypeDesktop
	default:
		return DeviceTypeUnknown
	}
}

// IsUnknown returns true if no device category applies.
func (ua UserAgent) IsUnknown() bool { return ua.DeviceType() == DeviceTypeUnknown }

// Parse classifies a raw user agent string. It never fails: unrecognized
// input produces empty fields and the "Unknown Device" label.
// Empty or whitespace-only input returns a zero result with an empty Display.
func Parse(ua string) UserAgent {
	result := UserAgent{Raw: ua}
	if strings.TrimSpace(ua) == "" {
		return result
	}

	systemInfo := extractSystemInfo(ua)

	result.Device = ParseDevice(systemInfo)
	if result.Device.Model == "" && result.Device.Vendor == "" {
		result.Device = ParseDevice(ua)
	}

	result.OS = ParseOS(systemInfo)
	if result.OS.Name == "" && result.OS.Version == "" {
		result.OS = ParseOS(ua)
	}

	result.Browser = ParseBrowser(ua)

	result.IsBot = botPattern.MatchString(ua)
	if result.IsBot && result.Device.Model == "" {
		result.Device.Model = ModelBot
	}

	result.classify()
	result.Display = result.buildDisplay()

	return result
}

// Require is Parse for callers that treat an empty user agent as an error.
func Require(ua string) (UserAgent, error) {
	result := Parse(ua)
	if strings.TrimSpace(ua) == "" {
		return result, ErrEmptyUserAgent
	}
	return result, nil
}

// extractSystemInfo returns the text inside the first pair of parentheses,
// or an empty string.
func extractSystemInfo(ua string) string {
	m := systemInfoPattern.FindStringSubmatch(ua)
	if m == nil {
		return ""
	}
	return m[1]
}

// classify derives the browser, OS and device facets. The order of the device
// rules matters: tablet overrides mobile, TV overrides both.
func (ua *UserAgent) classify() {
	model := ua.Device.Model
	osName := string(ua.OS.Name)

	ua.IsChrome = ua.Browser.Name == BrowserChrome || strings.Contains(model, "Chrome")
	ua.IsFirefox = ua.Browser.Name == BrowserFirefox
	ua.IsSafari = ua.Browser.Name == BrowserSafari
	ua.IsEdge = ua.Browser.Name == BrowserEdge
	ua.IsOpera = ua.Browser.Name == BrowserOpera

	ua.IsWindows = strings.Contains(osName, string(OSWindows))
	ua.IsMacOS = strings.Contains(osName, string(OSMacOS))
	ua.IsLinux = strings.Contains(osName, string(OSLinux))
	ua.IsAndroid = strings.Contains(osName, string(OSAndroid))
	ua.IsIOS = strings.Contains(osName, string(OSIOS))
	ua.IsIPadOS = strings.Contains(osName, string(OSIPadOS))

	ua.IsTablet = ua.IsIPadOS ||
		containsAny(model, "Pad", "Tab", "Kindle", "Pixel C") ||
		strings.Contains(ua.Raw, " Tablet")
	ua.IsTV = strings.Contains(osName, "TV") ||
		containsAny(model, "TV", "Roku", "Chromecast")
	ua.IsMobile = ua.IsIOS ||
		(ua.IsAndroid && !ua.IsTablet) ||
		strings.Contains(ua.Raw, "Mobile")

	if ua.IsTablet {
		ua.IsMobile = false
	}
	if ua.IsTV {
		ua.IsTablet = false
		ua.IsMobile = false
	}

	ua.IsConsole = containsAny(model, "Xbox", "PlayStation") ||
		strings.Contains(string(ua.Device.Vendor), string(VendorNintendo))
	ua.IsDesktop = !ua.IsMobile && !ua.IsTablet && !ua.IsTV && !ua.IsBot

	if ua.Device.Vendor == "" && (ua.IsIOS || ua.IsMacOS) {
		ua.Device.Vendor = VendorApple
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Bot name extraction keywords - direct mapping for common bots
var botNames = []struct {
	keyword string
	name    string
}{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "Yandexbot"},
	{"baiduspider", "Baiduspider"},
	{"twitterbot", "Twitterbot"},
	{"facebookbot", "FacebookBot"},
	{"facebookexternalhit", "Facebook"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "TelegramBot"},
	{"gptbot", "GPTBot"},
	{"chatgpt-user", "ChatGPT-User"},
	{"oai-searchbot", "OAI-SearchBot"},
	{"slurp", "Yahoo! Slurp"},
}

// Generic bot name patterns, tried in order when no known bot matched
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// BotName returns a best-effort crawler name such as "Googlebot".
// It returns an empty string for non-bots and "Unknown Bot" when the
// crawler cannot be named.
func (ua UserAgent) BotName() string {
	if !ua.IsBot {
		return ""
	}

	lower := strings.ToLower(ua.Raw)
	for _, b := range botNames {
		if strings.Contains(lower, b.keyword) {
			return b.name
		}
	}

	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if m := pattern.FindStringSubmatch(ua.Raw); len(m) > 1 {
			return title.String(strings.ToLower(m[1]))
		}
	}

	return "Unknown Bot"
}
