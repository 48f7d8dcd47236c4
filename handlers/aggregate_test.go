// Copyright (c) 2026 Cole Heinz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/coleheinz/courtlog/models"
	"github.com/coleheinz/courtlog/testutil"
)

func lionsBearsRequest() models.CreateGameRequest {
	return models.CreateGameRequest{
		Date: "1/15/2026",
		Team1: &models.TeamInput{
			Name:        "Lions",
			BonusPoints: 2,
			Players: []models.PlayerInput{
				{Name: "A", Number: "3", Points: 10, Fouls: 1},
			},
		},
		Team2: &models.TeamInput{
			Name:        "Bears",
			BonusPoints: 0,
			Players:     []models.PlayerInput{},
		},
	}
}

func TestCreateGameComputesTotals(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceID, _ := testutil.CreateTestDevice(t, conn)

	game, err := createGame(conn, deviceID, lionsBearsRequest())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	if game.Team1.Total != 12 {
		t.Errorf("Expected team1 total 12 (10 points + 2 bonus), got %d", game.Team1.Total)
	}
	if game.Team2.Total != 0 {
		t.Errorf("Expected team2 total 0, got %d", game.Team2.Total)
	}
	if len(game.Team1.Players) != 1 {
		t.Errorf("Expected 1 player on team1, got %d", len(game.Team1.Players))
	}
	if len(game.Team2.Players) != 0 {
		t.Errorf("Expected 0 players on team2, got %d", len(game.Team2.Players))
	}
	if game.Team2.Players == nil {
		t.Error("Expected empty players slice, not nil")
	}
	if game.Team1.Name != "Lions" || game.Team2.Name != "Bears" {
		t.Errorf("Unexpected team names: %q, %q", game.Team1.Name, game.Team2.Name)
	}
}

func TestCreateGameThenReconstruct(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceID, _ := testutil.CreateTestDevice(t, conn)

	req := models.CreateGameRequest{
		Date: "2/1/2026",
		Team1: &models.TeamInput{
			Name:        "Home",
			BonusPoints: 3,
			Players: []models.PlayerInput{
				{Name: "Jordan", Number: "23", Points: 30, Fouls: 2},
				{Name: "Pippen", Number: "33", Points: 18, Fouls: 3},
			},
		},
		Team2: &models.TeamInput{
			Name:        "Away",
			BonusPoints: 1,
			Players: []models.PlayerInput{
				{Name: "Miller", Number: "31", Points: 25, Fouls: 4},
			},
		},
	}

	created, err := createGame(conn, deviceID, req)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	game, err := findGameByID(conn, created.ID, deviceID)
	if err != nil {
		t.Fatalf("Failed to reconstruct game: %v", err)
	}
	if game == nil {
		t.Fatal("Expected game, got nil")
	}

	if game.Date != "2/1/2026" {
		t.Errorf("Expected date to round-trip, got %q", game.Date)
	}
	if game.Team1.Total != 51 {
		t.Errorf("Expected team1 total 51 (30+18+3), got %d", game.Team1.Total)
	}
	if game.Team2.Total != 26 {
		t.Errorf("Expected team2 total 26 (25+1), got %d", game.Team2.Total)
	}
	if len(game.Team1.Players) != 2 || len(game.Team2.Players) != 1 {
		t.Errorf("Player counts do not match input: %d, %d",
			len(game.Team1.Players), len(game.Team2.Players))
	}
	if game.Team1.Players[0].Number != "23" {
		t.Errorf("Expected jersey number to round-trip as string, got %q", game.Team1.Players[0].Number)
	}
}

func TestFindGameByIDWrongDevice(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ownerID, _ := testutil.CreateTestDevice(t, conn)
	otherID, _ := testutil.CreateTestDevice(t, conn)

	created, err := createGame(conn, ownerID, lionsBearsRequest())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	// Wrong device behaves exactly like a missing game
	game, err := findGameByID(conn, created.ID, otherID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if game != nil {
		t.Error("Expected nil for a game owned by another device")
	}

	missing, err := findGameByID(conn, created.ID+999, ownerID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for a nonexistent game")
	}
}

func TestListGamesEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceID, _ := testutil.CreateTestDevice(t, conn)

	games, err := listGames(conn, deviceID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if games == nil {
		t.Fatal("Expected empty slice, not nil")
	}
	if len(games) != 0 {
		t.Errorf("Expected zero games, got %d", len(games))
	}
}

func TestListGamesNewestFirst(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceID, _ := testutil.CreateTestDevice(t, conn)

	dates := []string{"1/1/2026", "1/2/2026", "1/3/2026"}
	for _, date := range dates {
		req := lionsBearsRequest()
		req.Date = date
		if _, err := createGame(conn, deviceID, req); err != nil {
			t.Fatalf("Failed to create game: %v", err)
		}
	}

	games, err := listGames(conn, deviceID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(games))
	}

	// Most recently created first
	expected := []string{"1/3/2026", "1/2/2026", "1/1/2026"}
	for i, date := range expected {
		if games[i].Date != date {
			t.Errorf("Position %d: expected %s, got %s", i, date, games[i].Date)
		}
	}
}

func TestListGamesScopedToDevice(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceA, _ := testutil.CreateTestDevice(t, conn)
	deviceB, _ := testutil.CreateTestDevice(t, conn)

	if _, err := createGame(conn, deviceA, lionsBearsRequest()); err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	games, err := listGames(conn, deviceB)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Expected device B to see zero games, got %d", len(games))
	}
}

func TestDeleteGameCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	deviceID, _ := testutil.CreateTestDevice(t, conn)

	created, err := createGame(conn, deviceID, lionsBearsRequest())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	deleted, err := deleteGame(conn, created.ID, deviceID)
	if err != nil {
		t.Fatalf("Failed to delete game: %v", err)
	}
	if !deleted {
		t.Fatal("Expected delete to report a removed row")
	}

	for _, table := range []string{"games", "teams", "players"} {
		if count := testutil.CountRows(t, conn, table); count != 0 {
			t.Errorf("Expected zero %s rows after delete, got %d", table, count)
		}
	}

	// Second delete of the same ID reports nothing removed
	deleted, err = deleteGame(conn, created.ID, deviceID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to report no removed row")
	}
}

func TestDeleteGameWrongDevice(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	ownerID, _ := testutil.CreateTestDevice(t, conn)
	otherID, _ := testutil.CreateTestDevice(t, conn)

	created, err := createGame(conn, ownerID, lionsBearsRequest())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	deleted, err := deleteGame(conn, created.ID, otherID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if deleted {
		t.Error("Expected no delete for a game owned by another device")
	}

	// The game survives for its owner
	game, err := findGameByID(conn, created.ID, ownerID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if game == nil {
		t.Error("Expected owner's game to survive foreign delete attempt")
	}
}

func TestTeamTotal(t *testing.T) {
	tests := []struct {
		name        string
		players     []models.Player
		bonusPoints int
		expected    int
	}{
		{"no players no bonus", []models.Player{}, 0, 0},
		{"bonus only", []models.Player{}, 5, 5},
		{"players only", []models.Player{{Points: 10}, {Points: 7}}, 0, 17},
		{"players and bonus", []models.Player{{Points: 10}, {Points: 7}}, 3, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := teamTotal(tc.players, tc.bonusPoints); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}
