package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vantagerp/lootcase-api/internal/domain"
	"github.com/vantagerp/lootcase-api/internal/repository"
)

// LootcaseRepository implements the case repository for PostgreSQL
type LootcaseRepository struct {
	db *pgxpool.Pool
}

// NewLootcaseRepository creates a new LootcaseRepository
func NewLootcaseRepository(db *pgxpool.Pool) *LootcaseRepository {
	return &LootcaseRepository{db: db}
}

// GetCharacter retrieves a character by ID
func (r *LootcaseRepository) GetCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	query := `
		SELECT character_id, character_name, cash, chips, credits
		FROM characters
		WHERE character_id = $1
	`

	var c domain.Character
	err := r.db.QueryRow(ctx, query, characterID).Scan(&c.ID, &c.Name, &c.Cash, &c.Chips, &c.Credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &c, nil
}

// GetStock retrieves the character's unopened case counts
func (r *LootcaseRepository) GetStock(ctx context.Context, characterID uuid.UUID) ([]domain.StockEntry, error) {
	query := `
		SELECT case_id, count
		FROM case_stock
		WHERE character_id = $1 AND count > 0
		ORDER BY case_id
	`

	rows, err := r.db.Query(ctx, query, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	defer rows.Close()

	var stock []domain.StockEntry
	for rows.Next() {
		var entry domain.StockEntry
		if err := rows.Scan(&entry.CaseID, &entry.Count); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		stock = append(stock, entry)
	}
	return stock, rows.Err()
}

const historyColumns = `
	history_id, character_id, case_id, case_name,
	reward_kind, reward_name, reward_icon,
	rarity, rarity_name, rarity_color,
	amount, duplicate, refund, created_at
`

func scanHistoryEntry(row pgx.Row) (*domain.HistoryEntry, error) {
	var e domain.HistoryEntry
	err := row.Scan(
		&e.ID, &e.CharacterID, &e.CaseID, &e.CaseName,
		&e.RewardKind, &e.RewardName, &e.RewardIcon,
		&e.Rarity, &e.RarityName, &e.RarityColor,
		&e.Amount, &e.Duplicate, &e.Refund, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetHistory retrieves the character's most recent rewards, newest first
func (r *LootcaseRepository) GetHistory(ctx context.Context, characterID uuid.UUID, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM case_history
		WHERE character_id = $1
		ORDER BY created_at DESC, history_id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var history []domain.HistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, *entry)
	}
	return history, rows.Err()
}

// GetHistoryEntry retrieves one history entry scoped to its owner
func (r *LootcaseRepository) GetHistoryEntry(ctx context.Context, id int64, characterID uuid.UUID) (*domain.HistoryEntry, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM case_history
		WHERE history_id = $1 AND character_id = $2
	`

	entry, err := scanHistoryEntry(r.db.QueryRow(ctx, query, id, characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history entry: %w", err)
	}
	return entry, nil
}

func (r *LootcaseRepository) addCurrency(ctx context.Context, column string, characterID uuid.UUID, amount int64) (int64, error) {
	// column is always a compile-time constant, never user input.
	query := fmt.Sprintf(`
		UPDATE characters
		SET %s = %s + $2, updated_at = NOW()
		WHERE character_id = $1
		RETURNING %s
	`, column, column, column)

	var balance int64
	err := r.db.QueryRow(ctx, query, characterID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrCharacterNotFound
		}
		return 0, fmt.Errorf("failed to add %s: %w", column, err)
	}
	return balance, nil
}

func (r *LootcaseRepository) AddCash(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error) {
	return r.addCurrency(ctx, "cash", characterID, amount)
}

func (r *LootcaseRepository) AddChips(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error) {
	return r.addCurrency(ctx, "chips", characterID, amount)
}

func (r *LootcaseRepository) AddCredits(ctx context.Context, characterID uuid.UUID, amount int64) (int64, error) {
	return r.addCurrency(ctx, "credits", characterID, amount)
}

// FindRequest returns the stored response for a request ID, or nil when the
// request has never completed
func (r *LootcaseRepository) FindRequest(ctx context.Context, requestID string) ([]byte, error) {
	query := `SELECT response FROM case_requests WHERE request_id = $1`

	var payload []byte
	err := r.db.QueryRow(ctx, query, requestID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}
	return payload, nil
}

// BeginTx starts a case transaction
func (r *LootcaseRepository) BeginTx(ctx context.Context) (repository.LootcaseTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &lootcaseTx{tx: tx}, nil
}

type lootcaseTx struct {
	tx pgx.Tx
}

func (t *lootcaseTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *lootcaseTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// DebitCredits subtracts amount only when the balance covers it. The balance
// check lives in the WHERE clause so concurrent spenders serialize on the
// row instead of racing past a read-then-write.
func (t *lootcaseTx) DebitCredits(ctx context.Context, characterID uuid.UUID, amount int64) (int64, bool, error) {
	query := `
		UPDATE characters
		SET credits = credits - $2, updated_at = NOW()
		WHERE character_id = $1 AND credits >= $2
		RETURNING credits
	`

	var balance int64
	err := t.tx.QueryRow(ctx, query, characterID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to debit credits: %w", err)
	}
	return balance, true, nil
}

func (t *lootcaseTx) AddStock(ctx context.Context, characterID uuid.UUID, caseID string, delta int) (int, error) {
	query := `
		INSERT INTO case_stock (character_id, case_id, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, case_id)
		DO UPDATE SET count = case_stock.count + EXCLUDED.count
		RETURNING count
	`

	var count int
	if err := t.tx.QueryRow(ctx, query, characterID, caseID, delta).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to add stock: %w", err)
	}
	return count, nil
}

// TakeStock decrements stock only when the count covers qty
func (t *lootcaseTx) TakeStock(ctx context.Context, characterID uuid.UUID, caseID string, qty int) (int, bool, error) {
	query := `
		UPDATE case_stock
		SET count = count - $3
		WHERE character_id = $1 AND case_id = $2 AND count >= $3
		RETURNING count
	`

	var count int
	err := t.tx.QueryRow(ctx, query, characterID, caseID, qty).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to take stock: %w", err)
	}
	return count, true, nil
}

// GetPity reads the character's miss streak, locking the row until commit so
// concurrent opens of the same case serialize
func (t *lootcaseTx) GetPity(ctx context.Context, characterID uuid.UUID, caseID string) (int, error) {
	query := `
		SELECT streak FROM case_pity
		WHERE character_id = $1 AND case_id = $2
		FOR UPDATE
	`

	var streak int
	err := t.tx.QueryRow(ctx, query, characterID, caseID).Scan(&streak)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get pity streak: %w", err)
	}
	return streak, nil
}

func (t *lootcaseTx) SetPity(ctx context.Context, characterID uuid.UUID, caseID string, streak int) error {
	query := `
		INSERT INTO case_pity (character_id, case_id, streak)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, case_id)
		DO UPDATE SET streak = EXCLUDED.streak
	`

	if _, err := t.tx.Exec(ctx, query, characterID, caseID, streak); err != nil {
		return fmt.Errorf("failed to set pity streak: %w", err)
	}
	return nil
}

// InsertUnlock records a unique reward key. A unique violation means the
// character already holds the key.
func (t *lootcaseTx) InsertUnlock(ctx context.Context, characterID uuid.UUID, uniqueKey string) (bool, error) {
	query := `INSERT INTO case_unlocks (character_id, unique_key) VALUES ($1, $2)`

	if _, err := t.tx.Exec(ctx, query, characterID, uniqueKey); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrUniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert unlock: %w", err)
	}
	return true, nil
}

func (t *lootcaseTx) InsertHistory(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO case_history (
			character_id, case_id, case_name,
			reward_kind, reward_name, reward_icon,
			rarity, rarity_name, rarity_color,
			amount, duplicate, refund, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING history_id
	`

	err := t.tx.QueryRow(ctx, query,
		entry.CharacterID, entry.CaseID, entry.CaseName,
		entry.RewardKind, entry.RewardName, entry.RewardIcon,
		entry.Rarity, entry.RarityName, entry.RarityColor,
		entry.Amount, entry.Duplicate, entry.Refund, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}
	return nil
}

func (t *lootcaseTx) StoreRequest(ctx context.Context, requestID string, characterID uuid.UUID, payload []byte) error {
	query := `
		INSERT INTO case_requests (request_id, character_id, response)
		VALUES ($1, $2, $3)
	`

	if _, err := t.tx.Exec(ctx, query, requestID, characterID, payload); err != nil {
		return fmt.Errorf("failed to store request: %w", err)
	}
	return nil
}
