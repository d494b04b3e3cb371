package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Eldorabotpy/eldora-engine/internal/model"
)

// PlayerRepository persists player records. Structured sub-documents
// (equipment, bag, action details) live in JSONB columns so item
// instances round-trip with their full attribute sets.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

// Load loads a player by id.
// Returns nil, nil if the player does not exist.
func (r *PlayerRepository) Load(ctx context.Context, playerID int64) (*model.Player, error) {
	query := `
		SELECT id, name, class, level, xp, currency,
		       current_hp, max_hp, current_mp, max_mp,
		       base_attack, base_defense, base_initiative, base_luck,
		       trials_completed, state,
		       equipment, inventory, bag, skills, details
		FROM players
		WHERE id = $1
	`

	var p model.Player
	var state string
	var equipment, inventory, bag, skills, details []byte

	err := r.pool.QueryRow(ctx, query, playerID).Scan(
		&p.ID, &p.Name, &p.Class, &p.Level, &p.XP, &p.Currency,
		&p.CurrentHP, &p.MaxHP, &p.CurrentMP, &p.MaxMP,
		&p.BaseAttack, &p.BaseDefense, &p.BaseInitiative, &p.BaseLuck,
		&p.TrialsCompleted, &state,
		&equipment, &inventory, &bag, &skills, &details,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying player %d: %w", playerID, err)
	}

	p.State = model.ActionState(state)
	if err := json.Unmarshal(equipment, &p.Equipment); err != nil {
		return nil, fmt.Errorf("decoding equipment for player %d: %w", playerID, err)
	}
	if err := json.Unmarshal(inventory, &p.Inventory); err != nil {
		return nil, fmt.Errorf("decoding inventory for player %d: %w", playerID, err)
	}
	if err := json.Unmarshal(bag, &p.Bag); err != nil {
		return nil, fmt.Errorf("decoding bag for player %d: %w", playerID, err)
	}
	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return nil, fmt.Errorf("decoding skills for player %d: %w", playerID, err)
	}
	if err := json.Unmarshal(details, &p.Details); err != nil {
		return nil, fmt.Errorf("decoding action details for player %d: %w", playerID, err)
	}

	if p.Equipment == nil {
		p.Equipment = make(map[string]*model.Item)
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int32)
	}

	return &p, nil
}

// Save upserts the whole player record in a single transaction.
func (r *PlayerRepository) Save(ctx context.Context, p *model.Player) error {
	equipment, err := json.Marshal(p.Equipment)
	if err != nil {
		return fmt.Errorf("encoding equipment for player %d: %w", p.ID, err)
	}
	inventory, err := json.Marshal(p.Inventory)
	if err != nil {
		return fmt.Errorf("encoding inventory for player %d: %w", p.ID, err)
	}
	bag, err := json.Marshal(p.Bag)
	if err != nil {
		return fmt.Errorf("encoding bag for player %d: %w", p.ID, err)
	}
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("encoding skills for player %d: %w", p.ID, err)
	}
	details, err := json.Marshal(p.Details)
	if err != nil {
		return fmt.Errorf("encoding action details for player %d: %w", p.ID, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for player %d: %w", p.ID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "playerID", p.ID, "error", err)
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO players (
			id, name, class, level, xp, currency,
			current_hp, max_hp, current_mp, max_mp,
			base_attack, base_defense, base_initiative, base_luck,
			trials_completed, state,
			equipment, inventory, bag, skills, details,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16,
			$17, $18, $19, $20, $21,
			$22
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			class = EXCLUDED.class,
			level = EXCLUDED.level,
			xp = EXCLUDED.xp,
			currency = EXCLUDED.currency,
			current_hp = EXCLUDED.current_hp,
			max_hp = EXCLUDED.max_hp,
			current_mp = EXCLUDED.current_mp,
			max_mp = EXCLUDED.max_mp,
			base_attack = EXCLUDED.base_attack,
			base_defense = EXCLUDED.base_defense,
			base_initiative = EXCLUDED.base_initiative,
			base_luck = EXCLUDED.base_luck,
			trials_completed = EXCLUDED.trials_completed,
			state = EXCLUDED.state,
			equipment = EXCLUDED.equipment,
			inventory = EXCLUDED.inventory,
			bag = EXCLUDED.bag,
			skills = EXCLUDED.skills,
			details = EXCLUDED.details,
			updated_at = EXCLUDED.updated_at
	`,
		p.ID, p.Name, p.Class, p.Level, p.XP, p.Currency,
		p.CurrentHP, p.MaxHP, p.CurrentMP, p.MaxMP,
		p.BaseAttack, p.BaseDefense, p.BaseInitiative, p.BaseLuck,
		p.TrialsCompleted, string(p.State),
		equipment, inventory, bag, skills, details,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upserting player %d: %w", p.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing player %d: %w", p.ID, err)
	}
	return nil
}
