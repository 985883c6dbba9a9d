package valueobjects

import "fmt"

// Platform represents a chat platform a mirror path reads from or
// writes to.
type Platform string

const (
	PlatformDiscord  Platform = "discord"
	PlatformTelegram Platform = "telegram"
)

// IsValid checks if the platform is valid
func (p Platform) IsValid() bool {
	return p == PlatformDiscord || p == PlatformTelegram
}

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}

// NewPlatform creates a new Platform from a string
func NewPlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid platform: %s, must be 'discord' or 'telegram'", s)
	}
	return p, nil
}
