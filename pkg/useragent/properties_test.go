package useragent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// corpus mixes real user agents with junk input.
var corpus = []string{
	"Mozilla/5.0 (Linux; Android 15; SM-S931B Build/AP3A.240905.015.A2; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/127.0.6533.103 Mobile Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 12_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad16,3; CPU OS 18_3_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 Tropicana_NJ/5.7.1",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36 Edg/134.0.0.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 Safari/605.1.15",
	"Mozilla/5.0 (Windows Phone 10.0; Android 4.2.1; Microsoft; Lumia 950) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/46.0.2486.0 Mobile Safari/537.36 Edge/13.1058",
	"Mozilla/5.0 (Linux; Android 11; AFTKRT Build/RS8101.1849N; wv)PlexTV/10.0.0.4149",
	"Mozilla/5.0 (CrKey armv7l 1.5.16041) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/31.0.1650.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; Xbox; Xbox Series X) Chrome/48.0",
	"Mozilla/5.0 (Nintendo 3DS; U; ; en) Version/1.7412.EU",
	"Mozilla/5.0 (Android 4.4; Tablet; rv:70.0) Gecko/70.0 Firefox/70.0",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"Mozilla/5.0 (Linux; Android 10; 🐶 SM-G973F/DS Build/QP1A) 🎈 Chrome/91.0",
	"Mozilla/5.0 (12.3.4; 56.78.90)",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/91.0.4472.124.10.20.30.40",
	"Roku4640X/DVP-7.70",
	"AppleTV14,1/16.1",
	"Opera/9.80",
	"curl/7.64.1",
	"Not a real user agent",
	"((((",
	")))",
	";;;;",
	"Bot",
	"x",
}

func TestParse_FacetConsistency(t *testing.T) {
	t.Parallel()

	for _, ua := range corpus {
		got := useragent.Parse(ua)

		assert.False(t, got.IsTablet && got.IsMobile, "tablet and mobile: %q", ua)
		if got.IsTV {
			assert.False(t, got.IsMobile, "TV and mobile: %q", ua)
			assert.False(t, got.IsTablet, "TV and tablet: %q", ua)
		}
		if got.IsDesktop {
			assert.False(t, got.IsMobile || got.IsTablet || got.IsTV || got.IsBot, "desktop conflict: %q", ua)
		}
		if got.IsBot {
			assert.Equal(t, useragent.DisplayBot, got.Display, ua)
			assert.NotEmpty(t, got.Device.Model, ua)
		}
	}
}

func TestParse_DisplayInvariants(t *testing.T) {
	t.Parallel()

	for _, ua := range corpus {
		got := useragent.Parse(ua)

		assert.NotEmpty(t, got.Display, ua)
		assert.Equal(t, strings.TrimSpace(got.Display), got.Display, ua)
		assert.NotContains(t, got.Display, "undefined", ua)
		assert.NotContains(t, got.Display, "null", ua)
		assert.NotContains(t, got.Display, "  ", ua)
		assert.Equal(t, strings.Count(got.Display, "("), strings.Count(got.Display, ")"), ua)

		words := strings.Split(got.Display, " ")
		for i := 1; i < len(words); i++ {
			assert.NotEqual(t, words[i-1], words[i], "repeated word in %q", got.Display)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	for _, ua := range corpus {
		assert.Equal(t, useragent.Parse(ua), useragent.Parse(ua), ua)
	}
}

func TestParse_VersionsAreNormalized(t *testing.T) {
	t.Parallel()

	for _, ua := range corpus {
		got := useragent.Parse(ua)
		if got.Browser.Version != "" {
			assert.Equal(t, got.Browser.Version, useragent.FormatVersion(got.Browser.Version), ua)
			assert.True(t, strings.HasPrefix(got.Browser.Version, got.Browser.Major), ua)
		}
		if got.OS.Version != "" && got.OS.Name != useragent.OSWindows {
			assert.Equal(t, got.OS.Version, useragent.FormatVersion(got.OS.Version), ua)
		}
	}
}

func TestParse_AppleVendorDefault(t *testing.T) {
	t.Parallel()

	for _, ua := range corpus {
		got := useragent.Parse(ua)
		if got.IsIOS || got.IsMacOS {
			assert.NotEmpty(t, got.Device.Vendor, ua)
		}
	}
}
