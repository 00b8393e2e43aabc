package model

// PlayerHandle is anything that can scope a saved time to a player
type PlayerHandle interface {
	NameTag() string
}

// Player is a PlayerHandle identified only by its name tag
type Player string

// NameTag returns the player's name tag
func (p Player) NameTag() string {
	return string(p)
}

// PlayerName returns the name tag of the handle, or "" for a nil handle.
// An empty name tag is treated the same as no player.
func PlayerName(p PlayerHandle) string {
	if p == nil {
		return ""
	}
	return p.NameTag()
}
