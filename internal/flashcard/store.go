package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/database"
	"github.com/oleksandr-serhiienko/SimpleTestApp/schemas"
)

// Store defines operations for managing cards and their review history.
// Initialize must succeed before any other call.
type Store interface {
	Initialize(ctx context.Context) error
	InsertCard(ctx context.Context, card *Card) (int64, error)
	GetAllCards(ctx context.Context) ([]Card, error)
	GetCardsByUser(ctx context.Context, userID string) ([]Card, error)
	GetCardByID(ctx context.Context, id int64) (*Card, error)
	UpdateCard(ctx context.Context, card *Card) (bool, error)
	DeleteCard(ctx context.Context, id int64) error
	AppendHistory(ctx context.Context, entry *HistoryEntry) (int64, error)
	GetCardHistory(ctx context.Context, cardID int64) ([]HistoryEntry, error)
	GetAllHistory(ctx context.Context) ([]HistoryEntry, error)
	RecordReview(ctx context.Context, card *Card, entry *HistoryEntry) error
	SetContextBad(ctx context.Context, contextID int64, bad bool) (bool, error)
	Close() error
}

const selectCardsWithContexts = `SELECT c.id, c.word, c.translations, c.lastRepeat, c.level, c.userId, c.source, c.sourceLanguage, c.targetLanguage,
	x.id AS contextId, x.sentence, x.translation AS contextTranslation, x.isBad
	FROM cards c LEFT JOIN contexts x ON x.cardId = c.id`

const (
	insertCardQuery = `INSERT INTO cards (word, translations, lastRepeat, level, userId, source, sourceLanguage, targetLanguage)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	insertContextQuery = `INSERT INTO contexts (sentence, translation, cardId, isBad) VALUES (?, ?, ?, ?)`
	updateCardQuery    = `UPDATE cards SET word = ?, translations = ?, lastRepeat = ?, level = ?, userId = ?, source = ?, sourceLanguage = ?, targetLanguage = ?
	WHERE id = ?`
	insertHistoryQuery = `INSERT INTO history (date, cardId, contextId, success, type) VALUES (?, ?, ?, ?, ?)`
)

// DBStore implements Store using sqlite3 or MySQL.
type DBStore struct {
	db          *sqlx.DB
	validate    *validator.Validate
	now         func() time.Time
	initialized atomic.Bool
}

var _ Store = (*DBStore)(nil)

// NewDBStore creates a new DBStore. The schema is created by Initialize.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{
		db:       db,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Initialize creates missing tables. It is safe to call more than once.
func (s *DBStore) Initialize(ctx context.Context) error {
	statements, err := schemas.Statements(s.db.DriverName())
	if err != nil {
		return &StorageError{Op: "initialize", Err: err}
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return &StorageError{Op: "initialize", Err: fmt.Errorf("db.ExecContext(schema) > %w", err)}
		}
	}
	s.initialized.Store(true)
	slog.Default().Debug("flashcard store initialized", "driver", s.db.DriverName())
	return nil
}

func (s *DBStore) ready() error {
	if !s.initialized.Load() {
		return ErrNotInitialized
	}
	return nil
}

// InsertCard writes the card and all of its contexts in one transaction and
// sets the assigned ids on card. If a context fails, nothing is kept and a
// *ContextInsertError is returned.
func (s *DBStore) InsertCard(ctx context.Context, card *Card) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if card == nil {
		return 0, fmt.Errorf("%w: nil card", ErrInvalidCard)
	}
	if card.LastRepeat.IsZero() {
		card.LastRepeat = s.now()
	}
	if err := s.validate.Struct(card); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	row, err := newCardRow(card)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}

	var cardID int64
	contexts := make([]ContextExample, len(card.Context))
	err = database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, insertCardQuery,
			row.Word, row.Translations, row.LastRepeat, row.Level, row.UserID,
			row.Source, row.SourceLanguage, row.TargetLanguage)
		if err != nil {
			return &StorageError{Op: "insert card", Err: fmt.Errorf("tx.ExecContext(insert card) > %w", err)}
		}
		cardID, err = result.LastInsertId()
		if err != nil {
			return &StorageError{Op: "insert card", Err: fmt.Errorf("result.LastInsertId() > %w", err)}
		}

		for i, example := range card.Context {
			result, err := tx.ExecContext(ctx, insertContextQuery, example.Original, example.Translation, cardID, example.IsBad)
			if err != nil {
				return &ContextInsertError{Word: card.Word, Index: i, Err: err}
			}
			contextID, err := result.LastInsertId()
			if err != nil {
				return &ContextInsertError{Word: card.Word, Index: i, Err: err}
			}
			example.ID = contextID
			example.CardID = cardID
			contexts[i] = example
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	card.ID = cardID
	card.Context = contexts
	return cardID, nil
}

// GetAllCards returns every card with its contexts.
func (s *DBStore) GetAllCards(ctx context.Context) ([]Card, error) {
	return s.selectCards(ctx, "all cards", selectCardsWithContexts+" ORDER BY c.id, x.id")
}

// GetCardsByUser returns the cards owned by userID.
func (s *DBStore) GetCardsByUser(ctx context.Context, userID string) ([]Card, error) {
	return s.selectCards(ctx, "cards by user", selectCardsWithContexts+" WHERE c.userId = ? ORDER BY c.id, x.id", userID)
}

// GetCardByID returns ErrCardNotFound for an unknown id.
func (s *DBStore) GetCardByID(ctx context.Context, id int64) (*Card, error) {
	cards, err := s.selectCards(ctx, "card by id", selectCardsWithContexts+" WHERE c.id = ? ORDER BY x.id", id)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrCardNotFound, id)
	}
	return &cards[0], nil
}

func (s *DBStore) selectCards(ctx context.Context, op string, query string, args ...any) ([]Card, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var rows []cardContextRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, &StorageError{Op: "select " + op, Err: fmt.Errorf("db.SelectContext(cards) > %w", err)}
	}
	return groupCards(rows)
}

// UpdateCard overwrites the card row. Contexts are left untouched.
// It reports false without an error when no card has the id.
func (s *DBStore) UpdateCard(ctx context.Context, card *Card) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if card == nil {
		return false, fmt.Errorf("%w: nil card", ErrInvalidCard)
	}
	if err := s.validate.Struct(card); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	return updateCard(ctx, s.db, card)
}

func updateCard(ctx context.Context, exec sqlx.ExecerContext, card *Card) (bool, error) {
	row, err := newCardRow(card)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	result, err := exec.ExecContext(ctx, updateCardQuery,
		row.Word, row.Translations, row.LastRepeat, row.Level, row.UserID,
		row.Source, row.SourceLanguage, row.TargetLanguage, row.ID)
	if err != nil {
		return false, &StorageError{Op: "update card", Err: fmt.Errorf("ExecContext(update card) > %w", err)}
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "update card", Err: fmt.Errorf("result.RowsAffected() > %w", err)}
	}
	if affected == 0 {
		slog.Default().Debug("update matched no card", "id", card.ID)
	}
	return affected > 0, nil
}

// DeleteCard removes the card and its contexts. History is kept.
func (s *DBStore) DeleteCard(ctx context.Context, id int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM contexts WHERE cardId = ?", id); err != nil {
			return &StorageError{Op: "delete card", Err: fmt.Errorf("tx.ExecContext(delete contexts) > %w", err)}
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id); err != nil {
			return &StorageError{Op: "delete card", Err: fmt.Errorf("tx.ExecContext(delete card) > %w", err)}
		}
		return nil
	})
}

// AppendHistory inserts entry and sets its id.
func (s *DBStore) AppendHistory(ctx context.Context, entry *HistoryEntry) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if err := s.prepareHistory(entry); err != nil {
		return 0, err
	}
	return appendHistory(ctx, s.db, entry)
}

func (s *DBStore) prepareHistory(entry *HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidHistory)
	}
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	if entry.Type == "" {
		entry.Type = HistoryTypeCard
	}
	if err := s.validate.Struct(entry); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHistory, err)
	}
	return nil
}

func appendHistory(ctx context.Context, exec sqlx.ExecerContext, entry *HistoryEntry) (int64, error) {
	result, err := exec.ExecContext(ctx, insertHistoryQuery,
		formatTimestamp(entry.Date), entry.CardID, nullableID(entry.ContextID), entry.Success, string(entry.Type))
	if err != nil {
		return 0, &StorageError{Op: "append history", Err: fmt.Errorf("ExecContext(insert history) > %w", err)}
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "append history", Err: fmt.Errorf("result.LastInsertId() > %w", err)}
	}
	entry.ID = id
	return id, nil
}

// GetCardHistory returns the card's entries, oldest first.
func (s *DBStore) GetCardHistory(ctx context.Context, cardID int64) ([]HistoryEntry, error) {
	return s.selectHistory(ctx, "SELECT id, date, cardId, contextId, success, type FROM history WHERE cardId = ? ORDER BY date, id", cardID)
}

// GetAllHistory returns every entry, including those of deleted cards, oldest first.
func (s *DBStore) GetAllHistory(ctx context.Context) ([]HistoryEntry, error) {
	return s.selectHistory(ctx, "SELECT id, date, cardId, contextId, success, type FROM history ORDER BY date, id")
}

func (s *DBStore) selectHistory(ctx context.Context, query string, args ...any) ([]HistoryEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var rows []historyRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, &StorageError{Op: "select history", Err: fmt.Errorf("db.SelectContext(history) > %w", err)}
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// RecordReview appends entry and writes the card's new state together.
func (s *DBStore) RecordReview(ctx context.Context, card *Card, entry *HistoryEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	if card == nil {
		return fmt.Errorf("%w: nil card", ErrInvalidCard)
	}
	if err := s.validate.Struct(card); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	if entry != nil && entry.CardID == 0 {
		entry.CardID = card.ID
	}
	if err := s.prepareHistory(entry); err != nil {
		return err
	}

	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := appendHistory(ctx, tx, entry); err != nil {
			return err
		}
		updated, err := updateCard(ctx, tx, card)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("%w: %d", ErrCardNotFound, card.ID)
		}
		return nil
	})
}

// SetContextBad flags or unflags an example. It reports whether the context exists.
func (s *DBStore) SetContextBad(ctx context.Context, contextID int64, bad bool) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	result, err := s.db.ExecContext(ctx, "UPDATE contexts SET isBad = ? WHERE id = ?", bad, contextID)
	if err != nil {
		return false, &StorageError{Op: "update context", Err: fmt.Errorf("db.ExecContext(update context) > %w", err)}
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, &StorageError{Op: "update context", Err: fmt.Errorf("result.RowsAffected() > %w", err)}
	}
	return affected > 0, nil
}

func (s *DBStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("db.Close() > %w", err)
	}
	return nil
}
