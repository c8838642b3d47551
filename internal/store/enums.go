package store

// Campaign ENUMs
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSending   = "sending"
	CampaignStatusSent      = "sent"
	CampaignStatusFailed    = "failed"
)

const (
	TaskModeManual    = "manual"
	TaskModeAutomated = "automated"
)

// Social platform ENUMs
const (
	PlatformX         = "x"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
	PlatformTikTok    = "tiktok"
)

var platformDisplayNames = map[string]string{
	PlatformX:         "X / Twitter",
	PlatformFacebook:  "Facebook",
	PlatformInstagram: "Instagram",
	PlatformLinkedIn:  "LinkedIn",
	PlatformTikTok:    "TikTok",
}

// Platforms lists the supported platforms in display order.
func Platforms() []string {
	return []string{PlatformX, PlatformFacebook, PlatformInstagram, PlatformLinkedIn, PlatformTikTok}
}

// IsValidPlatform reports whether platform is one of the supported platforms.
func IsValidPlatform(platform string) bool {
	_, ok := platformDisplayNames[platform]
	return ok
}

// PlatformDisplayName returns the human readable platform name, or the raw value when unknown.
func PlatformDisplayName(platform string) string {
	if name, ok := platformDisplayNames[platform]; ok {
		return name
	}
	return platform
}
