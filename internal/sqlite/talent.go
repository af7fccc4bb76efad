package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/repository"
)

// TalentRepository stores the talent collection in order.
type TalentRepository struct {
	db *DB
}

// NewTalentRepository creates a new TalentRepository
func NewTalentRepository(db *DB) *TalentRepository {
	return &TalentRepository{db: db}
}

// List returns every talent in collection order.
func (r *TalentRepository) List(ctx context.Context) ([]talent.Talent, error) {
	query := `
		SELECT id, name, expertise, contact_phone, social_security_status,
		       last_update_date, related_projects
		FROM talents
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list talents: %w", err)
	}
	defer rows.Close()

	var talents []talent.Talent
	for rows.Next() {
		var t talent.Talent
		var related string
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Expertise,
			&t.ContactPhone,
			&t.SocialSecurityStatus,
			&t.LastUpdateDate,
			&related,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan talent: %w", err)
		}
		if err := json.Unmarshal([]byte(related), &t.RelatedProjects); err != nil {
			return nil, fmt.Errorf("failed to decode related projects for %s: %w", t.ID, err)
		}
		talents = append(talents, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating talents: %w", err)
	}

	return talents, nil
}

// ReplaceAll swaps the whole collection in one transaction.
func (r *TalentRepository) ReplaceAll(ctx context.Context, talents []talent.Talent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM talents`); err != nil {
		return fmt.Errorf("failed to clear talents: %w", err)
	}
	for i, t := range talents {
		if err := insertTalent(ctx, tx, int64(i), t); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertTalent(ctx context.Context, tx *sql.Tx, position int64, t talent.Talent) error {
	related := t.RelatedProjects
	if related == nil {
		related = []string{}
	}
	encoded, err := json.Marshal(related)
	if err != nil {
		return fmt.Errorf("failed to encode related projects: %w", err)
	}

	query := `
		INSERT INTO talents (position, id, name, expertise, contact_phone,
		                     social_security_status, last_update_date, related_projects)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		position,
		t.ID,
		t.Name,
		t.Expertise,
		t.ContactPhone,
		string(t.SocialSecurityStatus),
		t.LastUpdateDate,
		string(encoded),
	)
	if isCheckViolation(err) {
		return fmt.Errorf("talent %s status %q: %w", t.ID, t.SocialSecurityStatus, repository.ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("failed to insert talent: %w", err)
	}
	return nil
}
