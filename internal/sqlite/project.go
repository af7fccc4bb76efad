package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/repository"
)

// ProjectRepository stores the project collection in order.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, project_name, keywords, extended_terms, project_content,
	contract_signing_date, project_end_date, contract_amount,
	construction_unit, contact_person, contact_phone`

// List returns every project in collection order.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID,
			&p.ProjectName,
			&p.Keywords,
			&p.ExtendedTerms,
			&p.ProjectContent,
			&p.ContractSigningDate,
			&p.ProjectEndDate,
			&p.ContractAmount,
			&p.ConstructionUnit,
			&p.ContactPerson,
			&p.ContactPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// Append inserts a project after the current last position.
func (r *ProjectRepository) Append(ctx context.Context, p project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM projects`).Scan(&next); err != nil {
		return fmt.Errorf("failed to read next position: %w", err)
	}
	if err := insertProject(ctx, tx, next, p); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceAll swaps the whole collection in one transaction.
func (r *ProjectRepository) ReplaceAll(ctx context.Context, projects []project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	for i, p := range projects {
		if err := insertProject(ctx, tx, int64(i), p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertProject(ctx context.Context, tx *sql.Tx, position int64, p project.Project) error {
	query := `
		INSERT INTO projects (position, ` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		position,
		p.ID,
		p.ProjectName,
		p.Keywords,
		p.ExtendedTerms,
		p.ProjectContent,
		p.ContractSigningDate,
		p.ProjectEndDate,
		p.ContractAmount,
		p.ConstructionUnit,
		p.ContactPerson,
		p.ContactPhone,
	)
	if isUniqueViolation(err) {
		return repository.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}
