package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildcrew/construction_mgmt_app/internal/apperrors"
	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portsrepo "github.com/buildcrew/construction_mgmt_app/internal/core/ports/repositories"
	"github.com/buildcrew/construction_mgmt_app/internal/models"
	"github.com/buildcrew/construction_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const siteColumns = `site_id, name, address, client_name, client_contact, start_date, expected_end_date, status, notes, created_at, last_updated_at`

type PgxSiteRepository struct {
	db *pgxpool.Pool
}

func newPgxSiteRepository(db *pgxpool.Pool) portsrepo.SiteRepositoryFacade {
	return &PgxSiteRepository{db: db}
}

var _ portsrepo.SiteRepositoryFacade = (*PgxSiteRepository)(nil)

func scanSite(row pgx.Row) (*models.Site, error) {
	var m models.Site
	err := row.Scan(
		&m.SiteID,
		&m.Name,
		&m.Address,
		&m.ClientName,
		&m.ClientContact,
		&m.StartDate,
		&m.ExpectedEndDate,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectSites(rows pgx.Rows) ([]domain.Site, error) {
	defer rows.Close()
	ms := []models.Site{}
	for rows.Next() {
		m, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating site rows: %w", rows.Err())
	}
	return mapping.ToDomainSiteSlice(ms), nil
}

func (r *PgxSiteRepository) SaveSite(ctx context.Context, site domain.Site) (int64, error) {
	m := mapping.ToModelSite(site)
	query := `
		INSERT INTO sites (name, address, client_name, client_contact, start_date, expected_end_date, status, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING site_id;
	`
	var siteID int64
	err := r.db.QueryRow(ctx, query,
		m.Name,
		m.Address,
		m.ClientName,
		m.ClientContact,
		m.StartDate,
		m.ExpectedEndDate,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&siteID)
	if err != nil {
		return 0, fmt.Errorf("failed to save site: %w", err)
	}
	return siteID, nil
}

func (r *PgxSiteRepository) FindSiteByID(ctx context.Context, siteID int64) (*domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE site_id = $1;`
	m, err := scanSite(r.db.QueryRow(ctx, query, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find site by ID %d: %w", siteID, err)
	}
	d := mapping.ToDomainSite(*m)
	return &d, nil
}

func (r *PgxSiteRepository) FindSites(ctx context.Context) ([]domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	return collectSites(rows)
}

func (r *PgxSiteRepository) FindSitesByStatus(ctx context.Context, status domain.SiteStatus) ([]domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE status = $1 ORDER BY name ASC;`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query sites by status: %w", err)
	}
	return collectSites(rows)
}

func (r *PgxSiteRepository) SearchSites(ctx context.Context, searchQuery string) ([]domain.Site, error) {
	query := `
		SELECT ` + siteColumns + `
		FROM sites
		WHERE name ILIKE '%' || $1 || '%' OR address ILIKE '%' || $1 || '%' OR client_name ILIKE '%' || $1 || '%'
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to search sites: %w", err)
	}
	return collectSites(rows)
}

func (r *PgxSiteRepository) FindSitesByStartDateRange(ctx context.Context, startDate, endDate string) ([]domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE start_date BETWEEN $1 AND $2 ORDER BY start_date;`
	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites by start date range: %w", err)
	}
	return collectSites(rows)
}

func (r *PgxSiteRepository) CountWorkersForSite(ctx context.Context, siteID int64) (int, error) {
	query := `
		SELECT COUNT(wsa.worker_id)
		FROM worker_site_assignments wsa
		WHERE wsa.site_id = $1 AND wsa.is_active;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, siteID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count workers for site %d: %w", siteID, err)
	}
	return count, nil
}

func (r *PgxSiteRepository) CountSitesByStatus(ctx context.Context, status domain.SiteStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sites WHERE status = $1;`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sites by status: %w", err)
	}
	return count, nil
}

func (r *PgxSiteRepository) CountSites(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sites;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sites: %w", err)
	}
	return count, nil
}

func (r *PgxSiteRepository) UpdateSite(ctx context.Context, site domain.Site) error {
	m := mapping.ToModelSite(site)
	query := `
		UPDATE sites
		SET name = $1, address = $2, client_name = $3, client_contact = $4, start_date = $5, expected_end_date = $6, status = $7, notes = $8, last_updated_at = $9
		WHERE site_id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Address,
		m.ClientName,
		m.ClientContact,
		m.StartDate,
		m.ExpectedEndDate,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.SiteID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update site query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("site not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSiteRepository) DeleteSite(ctx context.Context, siteID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sites WHERE site_id = $1;`, siteID)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("site not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
