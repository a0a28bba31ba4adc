package minecraft

// LaunchAuthData is the authenticated session a version is launched with.
// It is produced before resolving starts and only read afterwards.
type LaunchAuthData interface {
	// GetAccessToken returns the access token (strictly required)
	GetAccessToken() string
	// GetUUID returns the users UUID without dashes (strictly required)
	GetUUID() string
	// GetPlayerName returns the users player name (the one that also appears in game)
	GetPlayerName() string
	// GetUserType returns the users user type ("legacy", "mojang" or "msa").
	// Offline sessions use "legacy".
	GetUserType() string
}
