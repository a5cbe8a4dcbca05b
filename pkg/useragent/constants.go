package useragent

// Browser is a canonical browser family name.
// The zero value means the browser could not be identified.
type Browser string

// Browser families recognized by the matcher.
const (
	BrowserSilk    Browser = "Silk"
	BrowserChrome  Browser = "Chrome"
	BrowserFirefox Browser = "Firefox"
	BrowserSafari  Browser = "Safari"
	BrowserEdge    Browser = "Edge"
	BrowserOpera   Browser = "Opera"
	BrowserIE      Browser = "Internet Explorer"
	BrowserSamsung Browser = "Samsung Internet"
	BrowserUC      Browser = "UC Browser"
	BrowserVivaldi Browser = "Vivaldi"
	BrowserBrave   Browser = "Brave"
)

// OS is a canonical operating system name.
// The zero value means the operating system could not be identified.
type OS string

// Operating systems recognized by the matcher.
const (
	OSWindows     OS = "Windows"
	OSAndroid     OS = "Android"
	OSLinux       OS = "Linux"
	OSIPadOS      OS = "iPadOS"
	OSIOS         OS = "iOS"
	OSMacOS       OS = "macOS"
	OSChromeOS    OS = "Chrome OS"
	OSWebOS       OS = "WebOS"
	OSAndroidTV   OS = "Android TV"
	OSTizen       OS = "Tizen"
	OSFireOS      OS = "Fire OS"
	OSPlayStation OS = "PlayStation"
	OSXbox        OS = "Xbox"
	OSNintendo    OS = "Nintendo"
)

// Vendor is a device manufacturer. Known vendors are listed below, but any
// other non-empty value is a valid vendor carried verbatim.
type Vendor string

// Device vendors recognized by the matcher.
const (
	VendorApple     Vendor = "Apple"
	VendorSamsung   Vendor = "Samsung"
	VendorGoogle    Vendor = "Google"
	VendorHuawei    Vendor = "Huawei"
	VendorXiaomi    Vendor = "Xiaomi"
	VendorOnePlus   Vendor = "OnePlus"
	VendorMotorola  Vendor = "Motorola"
	VendorNokia     Vendor = "Nokia"
	VendorSony      Vendor = "Sony"
	VendorLG        Vendor = "LG"
	VendorHTC       Vendor = "HTC"
	VendorLenovo    Vendor = "Lenovo"
	VendorAsus      Vendor = "Asus"
	VendorAcer      Vendor = "Acer"
	VendorDell      Vendor = "Dell"
	VendorMicrosoft Vendor = "Microsoft"
	VendorNintendo  Vendor = "Nintendo"
	VendorAmazon    Vendor = "Amazon"
	VendorRoku      Vendor = "Roku"
)

// Device types represent the coarse category of the client device
const (
	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot = "bot"

	// DeviceTypeMobile identifies smartphones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablets and e-readers
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypeTV identifies smart TVs and streaming devices
	DeviceTypeTV = "tv"

	// DeviceTypeConsole identifies gaming consoles
	DeviceTypeConsole = "console"

	// DeviceTypeUnknown is used when none of the facets apply
	DeviceTypeUnknown = "unknown"
)

// Fixed domain values produced by the parser.
const (
	// ModelBot is the device model assigned to crawlers that expose no model.
	ModelBot = "BOT"

	// DisplayBot is the display label of every bot.
	DisplayBot = "Bot/Crawler"

	// DisplayDeveloperTool labels HTTP clients such as curl or Postman.
	DisplayDeveloperTool = "Developer Tool"

	// DisplayUnknown is the fallback display label.
	DisplayUnknown = "Unknown Device"

	// WindowsXP is the version reported for "Windows XP" tokens.
	WindowsXP = "XP"
)
