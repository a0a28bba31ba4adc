// Package auth creates sessions that can be used to launch the game
package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when creating a session without a player name
var ErrEmptyName = errors.New("player name can not be empty")

// Session is an authenticated (or offline) player
type Session struct {
	AccessToken string `json:"accessToken"`
	// UUID is the profile id without dashes
	UUID       string `json:"uuid"`
	PlayerName string `json:"playerName"`
	UserType   string `json:"userType"`
}

func (s *Session) GetAccessToken() string { return s.AccessToken }
func (s *Session) GetPlayerName() string  { return s.PlayerName }
func (s *Session) GetUUID() string        { return s.UUID }
func (s *Session) GetUserType() string    { return s.UserType }

// Offline returns a session for servers that do not verify players.
// The profile id is derived from the name, so it stays the same between launches.
// The access token is random.
func Offline(name string) (*Session, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	token, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken: simple(token),
		UUID:        OfflineUUID(name),
		PlayerName:  name,
		UserType:    "legacy",
	}, nil
}

// OfflineUUID returns the name based profile id used for offline sessions
func OfflineUUID(name string) string {
	return simple(uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)))
}

// simple formats the uuid without dashes
func simple(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
