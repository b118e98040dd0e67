package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skirmish/internal/engine/audio"
	"github.com/Faultbox/skirmish/internal/game/world"
)

// cueSounds plays a short synthesized phrase for each cue.
type cueSounds struct {
	manager *audio.Manager
	log     *zap.Logger
}

func (s *cueSounds) PlaySound(cue world.Cue) {
	notes := cueNotes(cue)
	if len(notes) == 0 {
		return
	}
	if err := s.manager.PlayNotes(notes...); err != nil {
		s.log.Debug("sound dropped", zap.Stringer("cue", cue), zap.Error(err))
	}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// cueNotes returns the phrase played for a cue.
func cueNotes(cue world.Cue) []audio.Note {
	switch cue {
	case world.CuePlayerShot:
		return []audio.Note{{Freq: 880, Duration: ms(40)}, {Freq: 660, Duration: ms(30)}}
	case world.CueEnemyShot:
		return []audio.Note{{Freq: 330, Duration: ms(60)}}
	case world.CueFighterDestroyed:
		return []audio.Note{
			{Freq: 523.25, Duration: ms(60)},
			{Freq: 392, Duration: ms(60)},
			{Freq: 261.63, Duration: ms(120)},
		}
	case world.CuePlayerHit:
		return []audio.Note{
			{Freq: 220, Duration: ms(120)},
			{Duration: ms(30)},
			{Freq: 110, Duration: ms(200)},
		}
	case world.CueGameOver:
		return []audio.Note{
			{Freq: 392, Duration: ms(200)},
			{Freq: 329.63, Duration: ms(200)},
			{Freq: 261.63, Duration: ms(400)},
		}
	default:
		return nil
	}
}
