package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pratik-mahalle/recommendations/internal/domain/recommendation"
	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/metrics"
)

const recommendationColumns = "id, pid, recommended_pid, type, liked"

type RecommendationRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewRecommendationRepository(db *sql.DB, dialect Dialect) recommendation.Repository {
	return &RecommendationRepository{db: db, dialect: dialect}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecommendation(row rowScanner) (*recommendation.Recommendation, error) {
	var rec recommendation.Recommendation
	var recType string
	if err := row.Scan(&rec.ID, &rec.PID, &rec.RecommendedPID, &recType, &rec.Liked); err != nil {
		return nil, err
	}
	rec.Type = recommendation.Type(recType)
	return &rec, nil
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, "recommendations", time.Since(start))
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *recommendation.Recommendation) (int64, error) {
	defer observe("insert", time.Now())

	query := r.dialect.Rebind(`
		INSERT INTO recommendations (pid, recommended_pid, type, liked)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		rec.PID, rec.RecommendedPID, string(rec.Type), rec.Liked,
	).Scan(&id)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create recommendation", err)
	}

	return id, nil
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id int64) (*recommendation.Recommendation, error) {
	defer observe("select", time.Now())

	query := r.dialect.Rebind(`SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = ?`)

	rec, err := scanRecommendation(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, recommendation.NotFoundError(id)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get recommendation", err)
	}

	return rec, nil
}

func (r *RecommendationRepository) Update(ctx context.Context, rec *recommendation.Recommendation) error {
	defer observe("update", time.Now())

	query := r.dialect.Rebind(`
		UPDATE recommendations SET pid = ?, recommended_pid = ?, type = ?, liked = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		rec.PID, rec.RecommendedPID, string(rec.Type), rec.Liked, rec.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update recommendation", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to update recommendation", err)
	}
	if rows == 0 {
		return recommendation.NotFoundError(rec.ID)
	}

	return nil
}

func (r *RecommendationRepository) Delete(ctx context.Context, id int64) error {
	defer observe("delete", time.Now())

	_, err := r.db.ExecContext(ctx, r.dialect.Rebind("DELETE FROM recommendations WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("Failed to delete recommendation", err)
	}

	return nil
}

func (r *RecommendationRepository) SetLiked(ctx context.Context, id int64, liked bool) (*recommendation.Recommendation, error) {
	defer observe("update", time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.DatabaseError("Failed to begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, r.dialect.Rebind("UPDATE recommendations SET liked = ? WHERE id = ?"), liked, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update recommendation", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, errors.DatabaseError("Failed to update recommendation", err)
	}
	if rows == 0 {
		return nil, recommendation.NotFoundError(id)
	}

	query := r.dialect.Rebind(`SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = ?`)
	rec, err := scanRecommendation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, errors.DatabaseError("Failed to reload recommendation", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.DatabaseError("Failed to commit transaction", err)
	}

	return rec, nil
}

func (r *RecommendationRepository) List(ctx context.Context, filter recommendation.Filter) ([]*recommendation.Recommendation, error) {
	defer observe("select", time.Now())

	var where []string
	var args []interface{}

	if filter.PID != nil {
		where = append(where, "pid = ?")
		args = append(args, *filter.PID)
	}
	if filter.Type != nil {
		where = append(where, "type = ?")
		args = append(args, string(*filter.Type))
	}
	if filter.Liked != nil {
		where = append(where, "liked = ?")
		args = append(args, *filter.Liked)
	}

	query := `SELECT ` + recommendationColumns + ` FROM recommendations`
	if len(where) > 0 {
		query = fmt.Sprintf("%s WHERE %s", query, strings.Join(where, " AND "))
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list recommendations", err)
	}
	defer rows.Close()

	recs := make([]*recommendation.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan recommendation", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to list recommendations", err)
	}

	return recs, nil
}
