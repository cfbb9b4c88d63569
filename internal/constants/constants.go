package constants

// Session and context keys
const (
	SessionCookieName = "halisaha_session"
	ContextKeyUserID  = "user_id"
)

// Validation limits
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit, in bytes.
	MaxPasswordLength = 72
	MinFullNameLength = 2
	MinPhoneLength    = 10
	BcryptCost        = 10
)

// Reliability score rules
const (
	DefaultReliabilityScore = 100
	// LeavePenalty is applied on every leave call, regardless of timing.
	LeavePenalty = -10
)

// Feedback rating bounds (inclusive)
const (
	MinRating = 1
	MaxRating = 5
)

// Collection names used by the storage backends
const (
	CollectionUsers   = "users"
	CollectionMatches = "matches"
)

// SeedOrganizerUsername owns the matches created by the seeder.
const SeedOrganizerUsername = "halisaha"

// Pagination for list endpoints. Lists are unpaged unless page or limit is given.
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
