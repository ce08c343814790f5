package game

import (
	"fountain/internal/logging"
	"fountain/internal/scene"
)

// eventSounds maps simulation events to their audio cue.
var eventSounds = map[scene.EventType]SoundKind{
	scene.EventPaused:   SoundPause,
	scene.EventResumed:  SoundResume,
	scene.EventPoolFull: SoundPoolFull,
}

// subscribeEvents logs every simulation event and plays its cue.
func subscribeEvents(bus *scene.EventBus) {
	log := logging.Logger()
	for t, sound := range eventSounds {
		bus.Subscribe(t, func(e scene.Event) {
			log.Info("fountain", "event", e.Type, "t", e.Time, "particles", e.Count)
			PlaySound(sound)
		})
	}
}
