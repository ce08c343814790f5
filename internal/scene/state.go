package scene

type State int

const (
	StateRunning State = iota // simulation advances every frame
	StatePaused               // last state keeps rendering, nothing moves
)

func (s State) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "running"
}
