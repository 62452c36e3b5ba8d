package model

// GameCategory groups listings by game title.
type GameCategory struct {
	ID       int64
	Name     string
	ImageURL string
}
