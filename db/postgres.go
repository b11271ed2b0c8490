package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLeagueNotFound     error = errors.New("league not found")
	ErrPickNotFound       error = errors.New("pick not found")
	ErrPredictionNotFound error = errors.New("prediction not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	const query = `SELECT league_id, name, total_rosters, season, avatar, settings
					FROM leagues WHERE league_id=@leagueID`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"leagueID": leagueID})

	var l model.League
	var avatar sql.NullString
	err := row.Scan(&l.LeagueID, &l.Name, &l.TotalRosters, &l.Season, &avatar, &l.Settings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %s: %w", leagueID, err)
	}
	l.Avatar = valueOrEmpty(avatar)

	return &l, nil
}

func (db *postgresDB) SaveLeague(ctx context.Context, l *model.League) error {
	if l == nil {
		return errors.New("SaveLeague - league is nil")
	}
	const query = `INSERT INTO leagues (league_id, name, total_rosters, season, avatar, settings, updated)
					VALUES (@leagueID, @name, @totalRosters, @season, @avatar, @settings, @updated)
					ON CONFLICT (league_id) DO UPDATE
					SET name=EXCLUDED.name,
						total_rosters=EXCLUDED.total_rosters,
						season=EXCLUDED.season,
						avatar=EXCLUDED.avatar,
						settings=EXCLUDED.settings,
						updated=EXCLUDED.updated`

	settings := l.Settings
	if len(settings) == 0 {
		settings = json.RawMessage(`{}`)
	}

	args := pgx.NamedArgs{
		"leagueID":     l.LeagueID,
		"name":         l.Name,
		"totalRosters": l.TotalRosters,
		"season":       l.Season,
		"avatar":       nullString(l.Avatar),
		"settings":     settings,
		"updated":      db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving league %s: %w", l.LeagueID, err)
	}
	return nil
}

func (db *postgresDB) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	const query = `SELECT league_id, roster_id, owner_id, players, starters, settings
					FROM rosters WHERE league_id=@leagueID ORDER BY roster_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying rosters for %s: %w", leagueID, err)
	}

	results := make([]model.Roster, 0, 12)
	for rows.Next() {
		var r model.Roster
		var ownerID sql.NullString
		if err := rows.Scan(&r.LeagueID, &r.RosterID, &ownerID, &r.Players, &r.Starters, &r.Settings); err != nil {
			return nil, fmt.Errorf("error scanning roster: %w", err)
		}
		r.OwnerID = valueOrEmpty(ownerID)
		results = append(results, r)
	}

	return results, rows.Err()
}

func (db *postgresDB) SaveRosters(ctx context.Context, leagueID string, rosters []model.Roster) error {
	const query = `INSERT INTO rosters (league_id, roster_id, owner_id, players, starters, settings)
					VALUES (@leagueID, @rosterID, @ownerID, @players, @starters, @settings)
					ON CONFLICT (league_id, roster_id) DO UPDATE
					SET owner_id=EXCLUDED.owner_id,
						players=EXCLUDED.players,
						starters=EXCLUDED.starters,
						settings=EXCLUDED.settings`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, r := range rosters {
		args := pgx.NamedArgs{
			"leagueID": leagueID,
			"rosterID": r.RosterID,
			"ownerID":  nullString(r.OwnerID),
			"players":  r.Players,
			"starters": r.Starters,
			"settings": r.Settings,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving roster %d in league %s: %w", r.RosterID, leagueID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing roster transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	const query = `SELECT user_id, league_id, display_name, avatar
					FROM users WHERE league_id=@leagueID ORDER BY display_name`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying users for %s: %w", leagueID, err)
	}

	results := make([]model.User, 0, 12)
	for rows.Next() {
		var u model.User
		var avatar sql.NullString
		if err := rows.Scan(&u.UserID, &u.LeagueID, &u.DisplayName, &avatar); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		u.Avatar = valueOrEmpty(avatar)
		results = append(results, u)
	}

	return results, rows.Err()
}

func (db *postgresDB) SaveUsers(ctx context.Context, leagueID string, users []model.User) error {
	const query = `INSERT INTO users (user_id, league_id, display_name, avatar)
					VALUES (@userID, @leagueID, @displayName, @avatar)
					ON CONFLICT (user_id, league_id) DO UPDATE
					SET display_name=EXCLUDED.display_name,
						avatar=EXCLUDED.avatar`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, u := range users {
		args := pgx.NamedArgs{
			"userID":      u.UserID,
			"leagueID":    leagueID,
			"displayName": u.DisplayName,
			"avatar":      nullString(u.Avatar),
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving user %s in league %s: %w", u.UserID, leagueID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing user transaction: %w", err)
	}
	return nil
}

const pickColumns = `id, league_id, season, round, roster_id, owner_id, previous_owner_id, pick_slot, comment`

func (db *postgresDB) GetPicks(ctx context.Context, leagueID string) ([]model.DraftPick, error) {
	const query = `SELECT ` + pickColumns + `
					FROM draft_picks WHERE league_id=@leagueID
					ORDER BY season, round, roster_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying picks for %s: %w", leagueID, err)
	}

	results := make([]model.DraftPick, 0, 36)
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, rows.Err()
}

func (db *postgresDB) GetPick(ctx context.Context, id int64) (*model.DraftPick, error) {
	const query = `SELECT ` + pickColumns + ` FROM draft_picks WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPick(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPickNotFound
		}
		return nil, err
	}
	return p, nil
}

func (db *postgresDB) ReplacePicks(ctx context.Context, leagueID string, picks []model.DraftPick) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Predictions hang off pick row ids, but the rebuild throws every row
	// away. Remember which synthetic key each prediction belonged to so
	// they can be re-attached after the insert.
	predictions, err := db.predictionsByPickKey(ctx, tx, leagueID)
	if err != nil {
		return err
	}

	const clear = `DELETE FROM draft_picks WHERE league_id=@leagueID`
	if _, err := tx.Exec(ctx, clear, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error clearing picks for %s: %w", leagueID, err)
	}

	const insert = `INSERT INTO draft_picks
					(league_id, season, round, roster_id, owner_id, previous_owner_id, pick_slot, comment)
					VALUES (@leagueID, @season, @round, @rosterID, @ownerID, @previousOwnerID, @pickSlot, @comment)
					RETURNING id`

	newIDs := make(map[string]int64, len(picks))
	for _, p := range picks {
		args := pgx.NamedArgs{
			"leagueID":        leagueID,
			"season":          p.Season,
			"round":           p.Round,
			"rosterID":        p.RosterID,
			"ownerID":         p.OwnerID,
			"previousOwnerID": p.PreviousOwnerID,
			"pickSlot":        nullString(p.PickSlot),
			"comment":         nullString(p.Comment),
		}
		var id int64
		if err := tx.QueryRow(ctx, insert, args).Scan(&id); err != nil {
			return fmt.Errorf("error inserting pick %s: %w", p.Key(), err)
		}
		newIDs[p.Key()] = id
	}

	const reattach = `INSERT INTO pick_predictions (pick_id, user_id, comment)
						VALUES (@pickID, @userID, @comment)
						ON CONFLICT (pick_id, user_id) DO UPDATE SET comment=EXCLUDED.comment`

	for key, preds := range predictions {
		id, found := newIDs[key]
		if !found {
			// The pick no longer exists, e.g. the league shrank its
			// round count. Predictions on it are dropped with the row.
			continue
		}
		for _, pred := range preds {
			args := pgx.NamedArgs{"pickID": id, "userID": pred.UserID, "comment": pred.Comment}
			if _, err := tx.Exec(ctx, reattach, args); err != nil {
				return fmt.Errorf("error re-attaching prediction for pick %s: %w", key, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing pick replacement: %w", err)
	}
	return nil
}

func (db *postgresDB) predictionsByPickKey(ctx context.Context, tx pgx.Tx, leagueID string) (map[string][]model.PickPrediction, error) {
	const query = `SELECT p.season, p.round, p.roster_id, pr.user_id, pr.comment
					FROM pick_predictions pr
					JOIN draft_picks p ON p.id = pr.pick_id
					WHERE p.league_id=@leagueID`

	rows, err := tx.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying predictions for %s: %w", leagueID, err)
	}

	result := make(map[string][]model.PickPrediction)
	for rows.Next() {
		var season string
		var round, rosterID int
		var pred model.PickPrediction
		if err := rows.Scan(&season, &round, &rosterID, &pred.UserID, &pred.Comment); err != nil {
			return nil, fmt.Errorf("error scanning prediction: %w", err)
		}
		key := model.PickKey(season, round, rosterID)
		result[key] = append(result[key], pred)
	}

	return result, rows.Err()
}

func (db *postgresDB) UpdatePick(ctx context.Context, id int64, pickSlot, comment *string) (*model.DraftPick, error) {
	const query = `UPDATE draft_picks
					SET pick_slot=COALESCE(@pickSlot, pick_slot),
						comment=COALESCE(@comment, comment)
					WHERE id=@id
					RETURNING ` + pickColumns

	args := pgx.NamedArgs{
		"id":       id,
		"pickSlot": pickSlot,
		"comment":  comment,
	}
	row := db.pool.QueryRow(ctx, query, args)
	p, err := scanPick(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPickNotFound
		}
		return nil, fmt.Errorf("error updating pick %d: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) GetTeamOrder(ctx context.Context, leagueID string) ([]int, error) {
	const query = `SELECT team_order FROM league_team_order WHERE league_id=@leagueID`

	var raw []byte
	err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"leagueID": leagueID}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying team order for %s: %w", leagueID, err)
	}

	var order []int
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("error parsing team order for %s: %w", leagueID, err)
	}
	return order, nil
}

func (db *postgresDB) SetTeamOrder(ctx context.Context, leagueID string, order []int) error {
	const query = `INSERT INTO league_team_order (league_id, team_order)
					VALUES (@leagueID, @order)
					ON CONFLICT (league_id) DO UPDATE SET team_order=EXCLUDED.team_order`

	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("error encoding team order: %w", err)
	}

	args := pgx.NamedArgs{"leagueID": leagueID, "order": raw}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving team order for %s: %w", leagueID, err)
	}
	return nil
}

func (db *postgresDB) GetPredictions(ctx context.Context, leagueID string) ([]model.PickPrediction, error) {
	const query = `SELECT pr.pick_id, pr.user_id, pr.comment
					FROM pick_predictions pr
					JOIN draft_picks p ON p.id = pr.pick_id
					WHERE p.league_id=@leagueID
					ORDER BY pr.pick_id, pr.user_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying predictions for %s: %w", leagueID, err)
	}

	results := make([]model.PickPrediction, 0, 8)
	for rows.Next() {
		var pred model.PickPrediction
		if err := rows.Scan(&pred.PickID, &pred.UserID, &pred.Comment); err != nil {
			return nil, fmt.Errorf("error scanning prediction: %w", err)
		}
		results = append(results, pred)
	}

	return results, rows.Err()
}

func (db *postgresDB) SavePrediction(ctx context.Context, p *model.PickPrediction) error {
	if p == nil {
		return errors.New("SavePrediction - prediction is nil")
	}
	const query = `INSERT INTO pick_predictions (pick_id, user_id, comment)
					VALUES (@pickID, @userID, @comment)
					ON CONFLICT (pick_id, user_id) DO UPDATE SET comment=EXCLUDED.comment`

	args := pgx.NamedArgs{"pickID": p.PickID, "userID": p.UserID, "comment": p.Comment}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving prediction for pick %d: %w", p.PickID, err)
	}
	return nil
}

func (db *postgresDB) DeletePrediction(ctx context.Context, pickID int64, userID string) error {
	const query = `DELETE FROM pick_predictions WHERE pick_id=@pickID AND user_id=@userID`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"pickID": pickID, "userID": userID})
	if err != nil {
		return fmt.Errorf("error deleting prediction for pick %d: %w", pickID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPredictionNotFound
	}
	return nil
}

func scanPick(row pgx.Row) (*model.DraftPick, error) {
	var p model.DraftPick
	var previousOwner sql.NullInt32
	var pickSlot, comment sql.NullString
	err := row.Scan(
		&p.ID,
		&p.LeagueID,
		&p.Season,
		&p.Round,
		&p.RosterID,
		&p.OwnerID,
		&previousOwner,
		&pickSlot,
		&comment)

	if err != nil {
		return nil, err
	}

	if previousOwner.Valid {
		prev := int(previousOwner.Int32)
		p.PreviousOwnerID = &prev
	}
	p.PickSlot = valueOrEmpty(pickSlot)
	p.Comment = valueOrEmpty(comment)

	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
