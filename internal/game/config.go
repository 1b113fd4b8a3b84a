package game

// DefaultPlayerName is used when Config.PlayerName is empty.
const DefaultPlayerName = "Seeker"

// Config holds game configuration options.
type Config struct {
	// Lang selects the language of monster, treasure and room names ("en", "ru").
	Lang string
	// PlayerName names the player in traces.
	PlayerName string
}
