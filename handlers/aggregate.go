// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/coleheinz/courtlog/models"
)

// createGame inserts the game, both teams, and all players in a single
// transaction, then re-reads the stored aggregate so the response
// carries recomputed totals instead of echoing the input. Any failure
// inside the sequence rolls the whole thing back - no partial game,
// team, or player rows survive.
func createGame(db *sql.DB, deviceID int64, req models.CreateGameRequest) (*models.Game, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var gameID int64
	err = tx.QueryRow(`
		INSERT INTO games (device_id, date, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, deviceID, req.Date, time.Now()).Scan(&gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}

	if err := insertTeam(tx, gameID, models.TeamOne, req.Team1); err != nil {
		return nil, err
	}
	if err := insertTeam(tx, gameID, models.TeamTwo, req.Team2); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit game: %w", err)
	}

	return findGameByID(db, gameID, deviceID)
}

func insertTeam(tx *sql.Tx, gameID int64, teamNumber int, team *models.TeamInput) error {
	var teamID int64
	err := tx.QueryRow(`
		INSERT INTO teams (game_id, name, team_number, bonus_points)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, gameID, team.Name, teamNumber, team.BonusPoints).Scan(&teamID)
	if err != nil {
		return fmt.Errorf("failed to insert team %d: %w", teamNumber, err)
	}

	for _, player := range team.Players {
		_, err := tx.Exec(`
			INSERT INTO players (team_id, name, number, points, fouls)
			VALUES ($1, $2, $3, $4, $5)
		`, teamID, player.Name, player.Number, player.Points, player.Fouls)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
	}

	return nil
}

// findGameByID reconstructs the full aggregate for one game, scoped to
// the owning device. A game owned by a different device is reported
// exactly like a missing one (nil, nil) so game IDs cannot be
// enumerated across devices.
func findGameByID(db *sql.DB, gameID, deviceID int64) (*models.Game, error) {
	game := &models.Game{
		Team1: models.Team{Players: []models.Player{}},
		Team2: models.Team{Players: []models.Player{}},
	}

	err := db.QueryRow(`
		SELECT id, date FROM games WHERE id = $1 AND device_id = $2
	`, gameID, deviceID).Scan(&game.ID, &game.Date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query game: %w", err)
	}

	rows, err := db.Query(`
		SELECT id, name, team_number, bonus_points
		FROM teams
		WHERE game_id = $1
		ORDER BY team_number
	`, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	type teamRow struct {
		id          int64
		name        string
		teamNumber  int
		bonusPoints int
	}

	teamRows := []teamRow{}
	for rows.Next() {
		var tr teamRow
		if err := rows.Scan(&tr.id, &tr.name, &tr.teamNumber, &tr.bonusPoints); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teamRows = append(teamRows, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}

	for _, tr := range teamRows {
		players, err := findPlayersByTeam(db, tr.id)
		if err != nil {
			return nil, err
		}

		team := models.Team{
			Name:        tr.name,
			BonusPoints: tr.bonusPoints,
			Total:       teamTotal(players, tr.bonusPoints),
			Players:     players,
		}

		switch tr.teamNumber {
		case models.TeamOne:
			game.Team1 = team
		case models.TeamTwo:
			game.Team2 = team
		}
	}

	return game, nil
}

func findPlayersByTeam(db *sql.DB, teamID int64) ([]models.Player, error) {
	rows, err := db.Query(`
		SELECT id, name, number, points, fouls
		FROM players
		WHERE team_id = $1
		ORDER BY id
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Number, &p.Points, &p.Fouls); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	return players, nil
}

// teamTotal recomputes the derived team score. Totals are never stored.
func teamTotal(players []models.Player, bonusPoints int) int {
	total := bonusPoints
	for _, p := range players {
		total += p.Points
	}
	return total
}

// listGames returns every game owned by the device, newest first, each
// fully reconstructed. This is an N+1 read per game - fine at the data
// volumes one scorekeeping device produces.
func listGames(db *sql.DB, deviceID int64) ([]models.Game, error) {
	rows, err := db.Query(`
		SELECT id FROM games
		WHERE device_id = $1
		ORDER BY created_at DESC, id DESC
	`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	gameIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		gameIDs = append(gameIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}

	games := []models.Game{}
	for _, id := range gameIDs {
		game, err := findGameByID(db, id, deviceID)
		if err != nil {
			return nil, err
		}
		if game != nil {
			games = append(games, *game)
		}
	}

	return games, nil
}

// deleteGame removes the game row scoped to the device; the teams and
// players go with it via ON DELETE CASCADE. Reports whether a row was
// actually removed so the handler can answer 404 for absent or
// non-owned games alike.
func deleteGame(db *sql.DB, gameID, deviceID int64) (bool, error) {
	result, err := db.Exec(`
		DELETE FROM games WHERE id = $1 AND device_id = $2
	`, gameID, deviceID)
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
