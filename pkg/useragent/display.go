package useragent

import (
	"strings"
)

const separatorOn = "on"

// displaySection is one piece of the display label. Sep, when set, is
// written between the previous section and this one.
type displaySection struct {
	Text string
	Sep  string
}

// displayBuilder accumulates display sections and renders them into a single
// label in one pass.
type displayBuilder struct {
	sections []displaySection
}

func (b *displayBuilder) add(text, sep string) {
	if text == "" {
		return
	}
	b.sections = append(b.sections, displaySection{Text: text, Sep: sep})
}

// raw joins the sections without any post-processing.
func (b *displayBuilder) raw() string {
	var sb strings.Builder
	for _, s := range b.sections {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
			if s.Sep != "" {
				sb.WriteString(s.Sep)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func (b *displayBuilder) contains(sub string) bool {
	return strings.Contains(b.raw(), sub)
}

// render joins the sections, collapses adjacent duplicate words and applies
// the "Microsoft Phone" rename.
func (b *displayBuilder) render() string {
	label := collapseRepeatedWords(b.raw())
	label = strings.Replace(label, "Microsoft Phone", "Windows Phone", 1)
	return strings.TrimSpace(label)
}

// collapseRepeatedWords drops every word equal to the word before it,
// so "iPhone iPhone" becomes "iPhone".
func collapseRepeatedWords(s string) string {
	words := strings.Split(s, " ")
	kept := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 && w == words[i-1] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// deviceNoun is the generic device word used when only the vendor is known.
func (ua UserAgent) deviceNoun() string {
	switch {
	case ua.IsMobile:
		return "Phone"
	case ua.IsTablet:
		return "Tablet"
	case ua.IsTV:
		return "TV"
	case ua.IsConsole:
		return "Console"
	default:
		return "Device"
	}
}

// unknownDeviceLabel is used when neither the device nor the OS is known.
func (ua UserAgent) unknownDeviceLabel() string {
	switch {
	case ua.IsMobile:
		return "Unknown Phone"
	case ua.IsTablet:
		return "Unknown Tablet"
	case ua.IsTV:
		return "TV"
	case ua.IsConsole:
		return "Console"
	default:
		return DisplayUnknown
	}
}

// osLabel renders "(Name Version)" or "(Name)".
func (ua UserAgent) osLabel() string {
	if ua.OS.Version == "" {
		return "(" + string(ua.OS.Name) + ")"
	}
	return "(" + string(ua.OS.Name) + " " + ua.OS.Version + ")"
}

// buildDisplay composes the human-readable label from the parsed fields and
// facets. It never returns an empty string.
func (ua UserAgent) buildDisplay() string {
	var b displayBuilder

	model := ua.Device.Model
	vendor := ua.Device.Vendor
	osName := ua.OS.Name

	if ua.Browser.Name != "" && !ua.IsConsole && !ua.IsTV {
		b.add(string(ua.Browser.Name), "")
	}

	switch {
	case model != "":
		if vendor != "" && vendor != VendorApple {
			b.add(string(vendor), separatorOn)
			b.add(model, "")
		} else {
			b.add(model, separatorOn)
		}
	case vendor != "" && !ua.IsDesktop:
		b.add(string(vendor), separatorOn)
		b.add(ua.deviceNoun(), "")
	}

	hasDevice := model != "" || vendor != ""
	switch {
	case hasDevice && !ua.IsDesktop && !ua.IsConsole && !ua.IsTV:
		if osName != "" && !b.contains("Windows Phone") && osName != OSWindows {
			b.add(ua.osLabel(), "")
		}
	case osName != "" && !ua.IsConsole && !ua.IsTV:
		b.add(string(osName), separatorOn)
		switch {
		case ua.IsMobile || ua.IsTablet:
			if ua.IsMobile {
				b.add("Phone", "")
			} else {
				b.add("Tablet", "")
			}
			if ua.OS.Version != "" {
				b.add(ua.osLabel(), "")
			}
		case ua.OS.Version != "":
			b.add(ua.OS.Version, "")
		}
	}

	if !hasDevice && osName == "" {
		b.add(ua.unknownDeviceLabel(), separatorOn)
	}

	label := b.render()
	switch {
	case ua.IsBot:
		label = DisplayBot
	case developerToolPattern.MatchString(ua.Raw) && (label == "" || label == DisplayUnknown):
		label = DisplayDeveloperTool
	}
	if label == "" {
		label = DisplayUnknown
	}
	return label
}
