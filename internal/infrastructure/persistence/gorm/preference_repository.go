package gorm

import (
	"context"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository implements the long-term preference store.
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates the repository.
func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// UpsertPreference inserts or updates the row identified by
// (user, type, value), replacing strength and last-seen.
func (r *PreferenceRepository) UpsertPreference(ctx context.Context, userID string, pref conversation.Preference) error {
	row := PreferenceModel{
		UserID:   userID,
		Type:     pref.Type,
		Value:    pref.Value,
		Strength: pref.Strength,
		LastSeen: pref.LastSeen,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}, {Name: "value"}},
		DoUpdates: clause.AssignmentColumns([]string{"strength", "last_seen", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return errors.NewProfileStoreError("upsert preference", err)
	}
	return nil
}

// ListPreferences returns all learned preferences for the user, strongest
// first.
func (r *PreferenceRepository) ListPreferences(ctx context.Context, userID string) ([]conversation.Preference, error) {
	var rows []PreferenceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("strength DESC, value ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.NewProfileStoreError("list preferences", err)
	}

	prefs := make([]conversation.Preference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, conversation.Preference{
			Type:     row.Type,
			Value:    row.Value,
			Strength: row.Strength,
			LastSeen: row.LastSeen,
		})
	}
	return prefs, nil
}

// AppendTurn writes one turn to the append-only log.
func (r *PreferenceRepository) AppendTurn(ctx context.Context, userID string, turn conversation.Turn) error {
	row := TurnModel{
		ID:           turn.ID.String(),
		UserID:       userID,
		SessionID:    turn.SessionID,
		UserText:     turn.UserText,
		ResponseText: turn.ResponseText,
		Intent:       string(turn.Intent),
		CreatedAt:    turn.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errors.NewProfileStoreError("append turn", err)
	}
	return nil
}
