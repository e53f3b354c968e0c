package components

import "github.com/yohamta/donburi"

// GameOverData is the run summary shown after the last player dies.
type GameOverData struct {
	Level int
	Kills int
}

var GameOver = donburi.NewComponentType[GameOverData]()
