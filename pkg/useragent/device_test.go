package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

func TestParseDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected useragent.DeviceInfo
	}{
		{
			name:     "longest literal wins",
			input:    "PlayStation; PlayStation 5/2.26",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorSony, Model: "PlayStation 5"},
		},
		{
			name:     "Pixel C before Pixel",
			input:    "Linux; Android 7.0; Pixel C Build/NRD90M; wv",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorGoogle, Model: "Pixel C"},
		},
		{
			name:     "iPhone OS token is not a device",
			input:    "iPad; CPU iPhone OS 8_3 like Mac OS X",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorApple, Model: "iPad"},
		},
		{
			name:     "iPhone model",
			input:    "iPhone14,7; CPU iPhone OS 18_3_2 like Mac OS X",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorApple, Model: "iPhone"},
		},
		{
			name:     "Samsung tablet",
			input:    "Linux; U; Android 14; SM-X306B Build/UP1A.231005.007",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorSamsung, Model: "Galaxy Tab"},
		},
		{
			name:     "model without vendor",
			input:    "CrKey armv7l 1.5.16041",
			expected: useragent.DeviceInfo{Model: "Chromecast"},
		},
		{
			name:     "vendor by name",
			input:    "Windows Phone 10.0; Android 6.0.1; Microsoft; RM-1152",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorMicrosoft},
		},
		{
			name:     "vendor by alias",
			input:    "Linux; Android 15; moto g - 2025 Build/V1VK35.22-13-2; wv",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorMotorola},
		},
		{
			name:     "vendor at end of input",
			input:    "Linux; Android 11; Lenovo",
			expected: useragent.DeviceInfo{Vendor: useragent.VendorLenovo},
		},
		{
			name:     "vendor name inside a word is ignored",
			input:    "Mozilla/5.0 AppleWebKit/537.36",
			expected: useragent.DeviceInfo{},
		},
		{
			name:     "empty",
			input:    "",
			expected: useragent.DeviceInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.ParseDevice(tt.input))
		})
	}
}

func TestMatchVendor_BoundaryRetry(t *testing.T) {
	t.Parallel()

	// Only the first occurrence of a vendor name is considered.
	v, ok := useragent.MatchVendor("Googlebot Google")
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok = useragent.MatchVendor("Google Googlebot")
	assert.True(t, ok)
	assert.Equal(t, useragent.VendorGoogle, v)
}

func TestMatchModel(t *testing.T) {
	t.Parallel()

	model, vendor, ok := useragent.MatchModel("Nintendo WiiU")
	assert.True(t, ok)
	assert.Equal(t, "Wii U", model)
	assert.Equal(t, useragent.VendorNintendo, vendor)

	_, _, ok = useragent.MatchModel("CPU iPhone OS 12_0 like Mac OS X")
	assert.False(t, ok)
}
