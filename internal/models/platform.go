package models

// Platform is one of the platforms a game can be released on.
type Platform string

const (
	PlatformPC     Platform = "PC"
	PlatformPS5    Platform = "PS5"
	PlatformXbox   Platform = "Xbox"
	PlatformSwitch Platform = "Switch"
	PlatformMobile Platform = "Mobile"
)

// Platforms is the allowed platform vocabulary, in display order.
var Platforms = []Platform{PlatformPC, PlatformPS5, PlatformXbox, PlatformSwitch, PlatformMobile}

// IsPlatform reports whether name belongs to the platform vocabulary.
func IsPlatform(name string) bool {
	for _, p := range Platforms {
		if string(p) == name {
			return true
		}
	}
	return false
}
