package game

import "github.com/KirkDiggler/strikeout/internal/models"

// UpdateFunc mutates a freshly read game. It may run more than once when a
// concurrent writer wins the race, so it must not have side effects beyond
// the game it is given. Returning an error aborts the update.
type UpdateFunc func(game *models.Game) error

type CreateGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type UpdateGameInput struct {
	GameID string
	Update UpdateFunc
}

type GetGamesByPlayerInput struct {
	PlayerID string
}
