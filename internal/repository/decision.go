package repository

import (
	"modbot/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DecisionRepository defines the interface for decision audit operations.
type DecisionRepository interface {
	Insert(record models.DecisionRecord) error
	ListRecent(limit int) ([]models.DecisionRecord, error)
}

type decisionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewDecisionRepository creates a new decision audit repository.
func NewDecisionRepository(db *sqlx.DB, logger *zap.Logger) DecisionRepository {
	return &decisionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *decisionRepository) Insert(record models.DecisionRecord) error {
	query := `
		INSERT INTO decisions (id, chat_id, message_id, user_id, action, resolved_by, outcome, created_at)
		VALUES (:id, :chat_id, :message_id, :user_id, :action, :resolved_by, :outcome, :created_at)`

	_, err := r.db.NamedExec(query, record)
	if err != nil {
		r.logger.Error("Failed to insert decision record",
			zap.Int64("chat_id", record.ChatID),
			zap.Int64("message_id", record.MessageID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *decisionRepository) ListRecent(limit int) ([]models.DecisionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	records := []models.DecisionRecord{}
	query := `
		SELECT id, chat_id, message_id, user_id, action, resolved_by, outcome, created_at
		FROM decisions
		ORDER BY created_at DESC
		LIMIT $1`

	if err := r.db.Select(&records, query, limit); err != nil {
		r.logger.Error("Failed to list decision records", zap.Error(err))
		return nil, err
	}
	return records, nil
}
