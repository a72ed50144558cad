package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/ausawards/admin-api/internal/model"
)

// AwardRepo persists awards in the 'awards' table. The alternate id and
// classification collections live in JSON columns so the whole
// aggregate is written and read as one row.
type AwardRepo struct{ DB *sql.DB }

func NewAwardRepo(db *sql.DB) *AwardRepo { return &AwardRepo{DB: db} }

// Save inserts or replaces an award row keyed by id.
func (r *AwardRepo) Save(ctx context.Context, a *model.Award) error {
	altIDs, err := json.Marshal(a.AlternateIDs)
	if err != nil {
		log.Printf("awards: failed to encode alternate ids for award %s: %v", a.ID, err)
		return err
	}
	classifications, err := json.Marshal(a.Classifications)
	if err != nil {
		log.Printf("awards: failed to encode classifications for award %s: %v", a.ID, err)
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO awards (id, external_id, name, industry_name, common_rule,
		                     alternate_ids, operative_date, expired_date, classifications)
		 VALUES (?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   external_id=VALUES(external_id), name=VALUES(name),
		   industry_name=VALUES(industry_name), common_rule=VALUES(common_rule),
		   alternate_ids=VALUES(alternate_ids), operative_date=VALUES(operative_date),
		   expired_date=VALUES(expired_date), classifications=VALUES(classifications)`,
		a.ID, a.ExternalID, a.Name, a.IndustryName, a.CommonRule,
		altIDs, a.OperativeDate.UTC(), a.ExpiredDate, classifications)
	if err != nil {
		log.Printf("awards: failed to save award %s: %v", a.ID, err)
	}
	return err
}

// FindByID fetches an award by id. Returns (nil, nil) when no row matches.
func (r *AwardRepo) FindByID(ctx context.Context, id string) (*model.Award, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, external_id, name, industry_name, common_rule,
		        alternate_ids, operative_date, expired_date, classifications
		 FROM awards WHERE id=? LIMIT 1`, id)
	a, err := scanAward(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Printf("awards: failed to load award %s: %v", id, err)
		return nil, err
	}
	return a, nil
}

// FindAll returns every award ordered by name.
func (r *AwardRepo) FindAll(ctx context.Context) ([]model.Award, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, external_id, name, industry_name, common_rule,
		        alternate_ids, operative_date, expired_date, classifications
		 FROM awards ORDER BY name`)
	if err != nil {
		log.Printf("awards: query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var awards []model.Award
	for rows.Next() {
		a, err := scanAward(rows.Scan)
		if err != nil {
			log.Printf("awards: scan failed: %v", err)
			return nil, err
		}
		awards = append(awards, *a)
	}
	return awards, rows.Err()
}

func scanAward(scan func(dest ...interface{}) error) (*model.Award, error) {
	var (
		a               model.Award
		altIDs          []byte
		classifications []byte
	)
	err := scan(&a.ID, &a.ExternalID, &a.Name, &a.IndustryName, &a.CommonRule,
		&altIDs, &a.OperativeDate, &a.ExpiredDate, &classifications)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(altIDs, &a.AlternateIDs); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(classifications, &a.Classifications); err != nil {
		return nil, err
	}
	return &a, nil
}
