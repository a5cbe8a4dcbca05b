package useragent

import (
	"strings"
)

// DeviceInfo represents the device manufacturer and model
type DeviceInfo struct {
	Vendor Vendor `json:"vendor,omitempty"`
	Model  string `json:"model,omitempty"`
}

// modelPattern maps a literal UA substring to a display model and vendor.
// RejectSuffix skips the pattern when its first occurrence is directly
// followed by that text.
type modelPattern struct {
	Literal      string
	Model        string
	Vendor       Vendor
	RejectSuffix string
}

// modelPatterns is sorted by literal length, longest first, in init().
var modelPatterns = []modelPattern{
	// Apple; "iPhone OS" is an OS token, not a device
	{Literal: "iPhone", Model: "iPhone", Vendor: VendorApple, RejectSuffix: " OS"},
	{Literal: "iPad", Model: "iPad", Vendor: VendorApple},
	{Literal: "iPod", Model: "iPod", Vendor: VendorApple},
	{Literal: "AppleTV", Model: "Apple TV", Vendor: VendorApple},

	// Google
	{Literal: "Pixel C", Model: "Pixel C", Vendor: VendorGoogle},
	{Literal: "Pixel", Model: "Pixel", Vendor: VendorGoogle},
	{Literal: "Nexus", Model: "Nexus", Vendor: VendorGoogle},

	// Sony
	{Literal: "PlayStation 5", Model: "PlayStation 5", Vendor: VendorSony},
	{Literal: "PlayStation 4", Model: "PlayStation 4", Vendor: VendorSony},
	{Literal: "PlayStation Vita", Model: "PlayStation Vita", Vendor: VendorSony},
	{Literal: "PlayStation", Model: "PlayStation", Vendor: VendorSony},

	// Microsoft
	{Literal: "Xbox Series X", Model: "Xbox Series X", Vendor: VendorMicrosoft},
	{Literal: "Xbox Series S", Model: "Xbox Series S", Vendor: VendorMicrosoft},
	{Literal: "XBOX_ONE_ED", Model: "Xbox One", Vendor: VendorMicrosoft},
	{Literal: "Xbox One", Model: "Xbox One", Vendor: VendorMicrosoft},
	{Literal: "Xbox", Model: "Xbox", Vendor: VendorMicrosoft},

	// Nintendo
	{Literal: "Nintendo Switch", Model: "Switch", Vendor: VendorNintendo},
	{Literal: "WiiU", Model: "Wii U", Vendor: VendorNintendo},
	{Literal: "Nintendo 3DS", Model: "3DS", Vendor: VendorNintendo},

	// Amazon
	{Literal: "Kindle", Model: "Kindle", Vendor: VendorAmazon},
	{Literal: "KFAPWI", Model: "Kindle", Vendor: VendorAmazon},
	{Literal: "KFTHWI", Model: "Kindle", Vendor: VendorAmazon},
	{Literal: "KFRASWI", Model: "Kindle", Vendor: VendorAmazon},
	{Literal: "Fire TV", Model: "Fire TV", Vendor: VendorAmazon},
	{Literal: "AFTKRT", Model: "Fire TV", Vendor: VendorAmazon},
	{Literal: "AFTT", Model: "Fire TV", Vendor: VendorAmazon},
	{Literal: "AFTM", Model: "Fire TV", Vendor: VendorAmazon},
	{Literal: "AFTS", Model: "Fire TV", Vendor: VendorAmazon},
	{Literal: "AFTB", Model: "Fire TV", Vendor: VendorAmazon},
	{Literal: "AFTR", Model: "Fire TV", Vendor: VendorAmazon},

	// Streaming sticks
	{Literal: "Roku", Model: "Roku", Vendor: VendorRoku},
	{Literal: "CrKey", Model: "Chromecast"},

	// Android phones and tablets identified by build codes
	{Literal: "DE2118", Model: "Nord", Vendor: VendorOnePlus},
	{Literal: "RPADG", Model: "Pad", Vendor: VendorXiaomi},
	{Literal: "YT-J", Model: "Tablet", Vendor: VendorLenovo},
	{Literal: "Note", Model: "Note", Vendor: VendorSamsung},
	{Literal: "SM-X", Model: "Galaxy Tab", Vendor: VendorSamsung},
	{Literal: "SM-", Model: "Galaxy", Vendor: VendorSamsung},
}

// deviceVendors are matched by name and must end on a word boundary.
var deviceVendors = []Vendor{
	VendorApple,
	VendorSamsung,
	VendorGoogle,
	VendorHuawei,
	VendorXiaomi,
	VendorOnePlus,
	VendorMotorola,
	VendorNokia,
	VendorSony,
	VendorLG,
	VendorHTC,
	VendorLenovo,
	VendorAsus,
	VendorAcer,
	VendorDell,
	VendorMicrosoft,
	VendorNintendo,
	VendorAmazon,
	VendorRoku,
}

type vendorAlias struct {
	Token  string
	Vendor Vendor
}

// vendorAliases are plain substring matches, checked in order.
var vendorAliases = []vendorAlias{
	{Token: "iPhone", Vendor: VendorApple},
	{Token: "iPad", Vendor: VendorApple},
	{Token: "iPod", Vendor: VendorApple},
	{Token: "Macintosh", Vendor: VendorApple},
	{Token: "AppleTV", Vendor: VendorApple},
	{Token: "SAMSUNG", Vendor: VendorSamsung},
	{Token: "SM-", Vendor: VendorSamsung},
	{Token: "Pixel", Vendor: VendorGoogle},
	{Token: "Nexus", Vendor: VendorGoogle},
	{Token: "HUAWEI", Vendor: VendorHuawei},
	{Token: "Redmi", Vendor: VendorXiaomi},
	{Token: "moto", Vendor: VendorMotorola},
	{Token: "PlayStation", Vendor: VendorSony},
	{Token: "ASUS", Vendor: VendorAsus},
	{Token: "Xbox", Vendor: VendorMicrosoft},
	{Token: "XBOX", Vendor: VendorMicrosoft},
	{Token: "XBOX_ONE_ED", Vendor: VendorMicrosoft},
	{Token: "Windows Phone", Vendor: VendorMicrosoft},
	{Token: "Lumia", Vendor: VendorMicrosoft},
	{Token: "Kindle", Vendor: VendorAmazon},
	{Token: "KFAPWI", Vendor: VendorAmazon},
	{Token: "KFTHWI", Vendor: VendorAmazon},
	{Token: "KFRASWI", Vendor: VendorAmazon},
	{Token: "AFTT", Vendor: VendorAmazon},
	{Token: "AFTM", Vendor: VendorAmazon},
	{Token: "AFTS", Vendor: VendorAmazon},
	{Token: "AFTB", Vendor: VendorAmazon},
	{Token: "AFTR", Vendor: VendorAmazon},
	{Token: "AFTKRT", Vendor: VendorAmazon},
}

// MatchModel returns the first model pattern, in longest-literal-first order,
// whose literal occurs in s.
func MatchModel(s string) (model string, vendor Vendor, ok bool) {
	for _, p := range modelPatterns {
		idx := strings.Index(s, p.Literal)
		if idx == -1 {
			continue
		}
		if p.RejectSuffix != "" && strings.HasPrefix(s[idx+len(p.Literal):], p.RejectSuffix) {
			continue
		}
		return p.Model, p.Vendor, true
	}
	return "", "", false
}

// MatchVendor detects the device manufacturer. Vendor names must be followed
// by a non-alphanumeric character or the end of input, so "AppleWebKit" does
// not count as Apple. Aliases are checked after the names.
func MatchVendor(s string) (Vendor, bool) {
	for _, v := range deviceVendors {
		idx := strings.Index(s, string(v))
		if idx == -1 {
			continue
		}
		next := idx + len(v)
		if next >= len(s) || !isASCIIAlnum(s[next]) {
			return v, true
		}
	}

	for _, alias := range vendorAliases {
		if strings.Contains(s, alias.Token) {
			return alias.Vendor, true
		}
	}

	return "", false
}

// ParseDevice extracts the device vendor and model from s.
// A vendor implied by the model wins over vendor detection.
func ParseDevice(s string) DeviceInfo {
	var info DeviceInfo

	if model, vendor, ok := MatchModel(s); ok {
		info.Model = model
		info.Vendor = vendor
	}
	if info.Vendor == "" {
		if vendor, ok := MatchVendor(s); ok {
			info.Vendor = vendor
		}
	}

	return info
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
