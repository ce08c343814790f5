//go:build android && audio_stub

package game

// SoundKind identifies a cue.
type SoundKind int

const (
	SoundPause SoundKind = iota
	SoundResume
	SoundPoolFull
)

func InitAudio() error         { return nil }
func PlaySound(kind SoundKind) {}
