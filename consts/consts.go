package consts

import "time"

const (
	// DefaultRadius is the help point search radius in meters
	DefaultRadius = 5000

	NotificationPageSize = 50
	MessagePageSize      = 50
	MaxMessagePageSize   = 100
	RecentBadgesCount    = 3

	MaxHelpPointImageSize = 10 << 20
	MaxAvatarSize         = 2 << 20
	MaxAttachmentSize     = 50 << 20

	// request body limits, the larger one for bodies carrying data uris
	MaxJSONBodySize   = 1 << 20
	MaxInlineBodySize = 64 << 20

	OTPLength      = 6
	OTPTTL         = 5 * time.Minute
	OTPMaxAttempts = 5
	OTPBlockTTL    = 15 * time.Minute
	VerifiedTTL    = 30 * time.Minute
	ResetTokenTTL  = time.Hour
)

// Object storage roots
const (
	HelpPointsEntity = "helpPoints"
	UsersEntity      = "users"
	ChatsEntity      = "chats"
)

var (
	HelpPointImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/heic"}
	AvatarTypes         = []string{"image/jpeg", "image/png", "image/webp"}
	AttachmentTypes     = []string{
		"image/jpeg", "image/png", "image/webp", "image/heic", "image/gif",
		"audio/mpeg", "audio/mp4", "audio/aac", "audio/wav",
		"video/mp4", "video/quicktime",
		"application/pdf",
	}
)
