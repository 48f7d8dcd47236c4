package models

import "time"

// Team numbers within a game
const (
	TeamOne = 1
	TeamTwo = 2
)

// Request types

type PlayerInput struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Points int    `json:"points"`
	Fouls  int    `json:"fouls"`
}

type TeamInput struct {
	Name        string        `json:"name"`
	BonusPoints int           `json:"bonusPoints"`
	Players     []PlayerInput `json:"players"`
}

// Team pointers distinguish a missing team payload from an empty team.
type CreateGameRequest struct {
	Date  string     `json:"date"`
	Team1 *TeamInput `json:"team1"`
	Team2 *TeamInput `json:"team2"`
}

// Response types

type RegisterDeviceResponse struct {
	Token    string `json:"token"`
	DeviceID int64  `json:"deviceId"`
}

type DeleteGameResponse struct {
	Message string `json:"message"`
}

// Domain types

type Device struct {
	ID        int64     `json:"id"`
	Token     string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

type Game struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Team1 Team   `json:"team1"`
	Team2 Team   `json:"team2"`
}

// Total is derived (player points + bonus) and recomputed on every read,
// never stored.
type Team struct {
	Name        string   `json:"name"`
	BonusPoints int      `json:"bonusPoints"`
	Total       int      `json:"total"`
	Players     []Player `json:"players"`
}

type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Points int    `json:"points"`
	Fouls  int    `json:"fouls"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
