package util

// DefaultPlayers is the table size when none is configured.
const DefaultPlayers = 2

// Config holds runtime settings and flags.
type Config struct {
	DSN       string
	Players   int
	Theme     string // empty means the last saved theme
	HideNames bool
}
