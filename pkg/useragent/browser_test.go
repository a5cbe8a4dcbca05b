package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

func TestParseBrowser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.BrowserInfo
	}{
		{
			name:     "Chrome on Android",
			ua:       "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Mobile Safari/537.36",
			expected: useragent.BrowserInfo{Name: useragent.BrowserChrome, Version: "114.0.0.0", Major: "114"},
		},
		{
			name:     "alias wins over literal",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 12_0 like Mac OS X) CriOS/69.0.3497.105 Mobile/15E148 Safari/605.1",
			expected: useragent.BrowserInfo{Name: useragent.BrowserChrome, Version: "69.0.3497.105", Major: "69"},
		},
		{
			name:     "Edg alias without slash falls back to Edge",
			ua:       "Mozilla/5.0 Chrome/46.0.2486.0 Mobile Safari/537.36 Edge/13.1058",
			expected: useragent.BrowserInfo{Name: useragent.BrowserEdge, Version: "13.1058", Major: "13"},
		},
		{
			name:     "Chromium Edge",
			ua:       "Mozilla/5.0 Chrome/134.0.0.0 Safari/537.36 Edg/134.0.0.0",
			expected: useragent.BrowserInfo{Name: useragent.BrowserEdge, Version: "134.0.0.0", Major: "134"},
		},
		{
			name:     "Opera via OPR",
			ua:       "Mozilla/5.0 Chrome/120.0.0.0 Safari/537.36 OPR/106.0.0.0",
			expected: useragent.BrowserInfo{Name: useragent.BrowserOpera, Version: "106.0.0.0", Major: "106"},
		},
		{
			name:     "Presto Opera uses Version token",
			ua:       "Opera/9.80 (Windows NT 6.1; U; en) Presto/2.10.229 Version/11.62",
			expected: useragent.BrowserInfo{Name: useragent.BrowserOpera, Version: "11.62", Major: "11"},
		},
		{
			name:     "Samsung Internet",
			ua:       "Mozilla/5.0 (Linux; Android 14) SamsungBrowser/23.0 Chrome/115.0.0.0 Mobile Safari/537.36",
			expected: useragent.BrowserInfo{Name: useragent.BrowserSamsung, Version: "23.0", Major: "23"},
		},
		{
			name:     "Silk before Chrome",
			ua:       "Mozilla/5.0 (Linux; Android 9; AFTR) Silk/98.6.10 like Chrome/98.0.4758.136 Safari/537.36",
			expected: useragent.BrowserInfo{Name: useragent.BrowserSilk, Version: "98.6.10", Major: "98"},
		},
		{
			name:     "Internet Explorer via Trident",
			ua:       "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko",
			expected: useragent.BrowserInfo{Name: useragent.BrowserIE, Version: "7.0", Major: "7"},
		},
		{
			name:     "name without version",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X) AppleWebKit Safari",
			expected: useragent.BrowserInfo{Name: useragent.BrowserSafari},
		},
		{
			name:     "slash without digits",
			ua:       "Firefox/beta",
			expected: useragent.BrowserInfo{Name: useragent.BrowserFirefox},
		},
		{
			name:     "unknown",
			ua:       "curl/7.64.1",
			expected: useragent.BrowserInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.ParseBrowser(tt.ua))
		})
	}
}
