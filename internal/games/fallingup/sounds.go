package fallingup

// Sounds receives the game's audio cues. Implementations must not block.
type Sounds interface {
	Jump()
	GameOver()
	StartMusic()
	StopMusic()
}

// NopSounds discards every cue.
type NopSounds struct{}

func (NopSounds) Jump()       {}
func (NopSounds) GameOver()   {}
func (NopSounds) StartMusic() {}
func (NopSounds) StopMusic()  {}
