package scene

// Key is a simulation-level control, independent of the window system.
type Key uint8

const (
	KeyCloser Key = iota
	KeyFarther
	KeyYawLeft
	KeyYawRight
	KeyPitchUp
	KeyPitchDown
)

// KeySet is the set of controls held down this frame.
type KeySet uint16

func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

func (s *KeySet) Set(k Key, down bool) {
	if down {
		*s |= 1 << k
	} else {
		*s &^= 1 << k
	}
}

// Input is an immutable snapshot of one frame's controls.
type Input struct {
	Down        KeySet
	TogglePause bool // pause key went down this frame
}
