package domain

import (
	"strings"
	"time"
)

// Verification links a Roblox account to a Discord account for the duration
// of a verification window. TimeToVerify is kept as the raw string the caller
// supplied (Unix seconds or ISO-8601); it is interpreted only when the record
// is read.
type Verification struct {
	// ID is assigned on first insert and preserved across upserts.
	ID string `json:"-" dynamodbav:"id"`
	// UsernameKey is the lowercase RobloxUsername; at most one record per key.
	UsernameKey     string    `json:"-" dynamodbav:"username_key"`
	RobloxUsername  string    `json:"robloxUsername" dynamodbav:"roblox_username"`
	RobloxID        string    `json:"robloxID" dynamodbav:"roblox_id"`
	DiscordUsername string    `json:"discordUsername" dynamodbav:"discord_username"`
	DiscordID       string    `json:"discordID" dynamodbav:"discord_id"`
	TimeToVerify    string    `json:"timeToVerify" dynamodbav:"time_to_verify"`
	JoinedGame      bool      `json:"joinedGame" dynamodbav:"joined_game"`
	CreatedAt       time.Time `json:"-" dynamodbav:"created_at"`
}

// NormalizeUsername returns the lookup key for a username. Lookups are
// case-insensitive; the stored record keeps the original casing for display.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

// UpsertVerificationRequest is the full create-or-update payload. All five
// identity/time fields are required and non-empty; validation order matters
// because the error names the first missing field.
type UpsertVerificationRequest struct {
	RobloxUsername  string `json:"robloxUsername" validate:"required"`
	RobloxID        string `json:"robloxID" validate:"required"`
	DiscordUsername string `json:"discordUsername" validate:"required"`
	DiscordID       string `json:"discordID" validate:"required"`
	TimeToVerify    string `json:"timeToVerify" validate:"required"`
	JoinedGame      bool   `json:"joinedGame"`
}

// UpdateJoinedGameRequest mutates only the joinedGame flag of an existing
// record. It is dispatched by body shape: exactly these two keys and nothing
// else.
type UpdateJoinedGameRequest struct {
	RobloxUsername string `json:"robloxUsername" validate:"required"`
	JoinedGame     bool   `json:"joinedGame"`
}
