// meta/meta.go
package meta

import "time"

// DefaultTimeLimit defines the search budget of a computer move.
const DefaultTimeLimit = 800 * time.Millisecond

// MaxTimeLimit defines the ceiling no difficulty or request may exceed.
const MaxTimeLimit = 1500 * time.Millisecond

// SafetyMargin defines how long past its time limit a search may take to reply.
const SafetyMargin = 100 * time.Millisecond

// MaxDepth defines the deepest search a request may ask for.
const MaxDepth = 12

// MaxTurns defines the number of plies after which a game is drawn.
const MaxTurns = 300

// MaxStalls defines how many consecutive turns without a legal move a side may
// take before the game is drawn.
const MaxStalls = 3

// RepetitionLimit defines how often a position may occur before the game is drawn.
const RepetitionLimit = 3

// DefaultPort defines the port of the agent server.
const DefaultPort = "8080"

// NumGames defines the number of games per experiment match up.
const NumGames = 10

// GoRoutines defines how many experiment games run at once.
const GoRoutines = 4
