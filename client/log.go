// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/coleheinz/courtlog/models"
)

// GameLog is the client-side view of past games, with the availability-
// over-consistency behavior the app shipped with: reads degrade to an
// empty log, failed saves keep a locally-identified record, and deletes
// are applied locally whether or not the server confirms. After any
// fallback the local view may diverge from server state until the next
// successful Load; locally-created records are never reconciled.
type GameLog struct {
	client *Client
	games  []models.Game
}

func NewGameLog(client *Client) *GameLog {
	return &GameLog{
		client: client,
		games:  []models.Game{},
	}
}

// Games returns the current local view, newest first.
func (l *GameLog) Games() []models.Game {
	return l.games
}

// Load refreshes the log from the server. On failure the log continues
// empty (offline mode) and the error is returned for display.
func (l *GameLog) Load(ctx context.Context) error {
	games, err := l.client.Games(ctx)
	if err != nil {
		slog.Warn("failed to load games, continuing with empty log", "error", err)
		l.games = []models.Game{}
		return err
	}

	l.games = games
	return nil
}

// Save persists the game and prepends the stored aggregate to the log.
// If the server rejects the call or is unreachable, a record with a
// client-generated ID is kept instead so the session is not lost; that
// record will not be visible on another client or after a reinstall.
func (l *GameLog) Save(ctx context.Context, req models.CreateGameRequest) (models.Game, error) {
	saved, err := l.client.SaveGame(ctx, req)
	if err != nil {
		slog.Warn("failed to save game, keeping local record", "error", err)
		local := localGame(req)
		l.games = append([]models.Game{local}, l.games...)
		return local, err
	}

	l.games = append([]models.Game{*saved}, l.games...)
	return *saved, nil
}

// Delete removes the game from the server and from the log. The local
// removal happens even when the server call fails (optimistic delete);
// the error is still returned so callers can surface it.
func (l *GameLog) Delete(ctx context.Context, gameID int64) error {
	err := l.client.DeleteGame(ctx, gameID)
	if err != nil {
		slog.Warn("failed to delete game on server, removing locally anyway", "error", err)
	}

	games := l.games[:0]
	for _, game := range l.games {
		if game.ID != gameID {
			games = append(games, game)
		}
	}
	l.games = games

	return err
}

// localGame synthesizes the record the server would have returned,
// identified by a millisecond timestamp like the app's offline IDs.
func localGame(req models.CreateGameRequest) models.Game {
	return models.Game{
		ID:    time.Now().UnixMilli(),
		Date:  req.Date,
		Team1: localTeam(req.Team1),
		Team2: localTeam(req.Team2),
	}
}

func localTeam(in *models.TeamInput) models.Team {
	team := models.Team{Players: []models.Player{}}
	if in == nil {
		return team
	}

	team.Name = in.Name
	team.BonusPoints = in.BonusPoints
	team.Total = in.BonusPoints

	for i, p := range in.Players {
		team.Total += p.Points
		team.Players = append(team.Players, models.Player{
			ID:     int64(i + 1),
			Name:   p.Name,
			Number: p.Number,
			Points: p.Points,
			Fouls:  p.Fouls,
		})
	}

	return team
}
