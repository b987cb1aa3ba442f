package sim

// EventKind identifies something the platform may react to, such as playing
// a sound.
type EventKind int

const (
	EventStart       EventKind = iota // run started, session is ready
	EventPlace                        // a block was dropped
	EventPerfect                      // perfect placement
	EventCombo                        // combo growth triggered
	EventTrim                         // block trimmed
	EventFloorBonus                   // floor bonus awarded
	EventGameOver                     // run ended; Summary is set
	EventResultReady                  // game-over delay elapsed
	EventPowerUp                      // slow motion or hint activated
	EventRevive                       // revive applied
)

// Event is reported by Tap, Update and Resolve.
type Event struct {
	Kind    EventKind
	Outcome Outcome    // EventPlace
	Combo   int        // EventPerfect, EventCombo
	Effect  Effect     // EventPowerUp, EventRevive
	Points  int        // EventFloorBonus
	Summary RunSummary // EventGameOver
}
