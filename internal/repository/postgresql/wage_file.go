package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/wagefile"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wageFileRepository struct {
	db *database.DB
}

func NewWageFileRepository(db *database.DB) wagefile.WageFileRepository {
	return &wageFileRepository{db: db}
}

func (r *wageFileRepository) Create(ctx context.Context, file wagefile.WageFile) (wagefile.WageFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wage_files (
			company_id, batch_id, file_name, storage_path,
			record_count, total_amount, warnings, status, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, company_id, batch_id, file_name, storage_path,
			record_count, total_amount, warnings, status, generated_by,
			created_at, updated_at
	`

	var f wagefile.WageFile
	err := q.QueryRow(ctx, query,
		file.CompanyID, file.BatchID, file.FileName, file.StoragePath,
		file.RecordCount, file.TotalAmount, file.Warnings, file.Status, file.GeneratedBy,
	).Scan(
		&f.ID, &f.CompanyID, &f.BatchID, &f.FileName, &f.StoragePath,
		&f.RecordCount, &f.TotalAmount, &f.Warnings, &f.Status, &f.GeneratedBy,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return wagefile.WageFile{}, fmt.Errorf("failed to create wage file record: %w", err)
	}

	return f, nil
}

func (r *wageFileRepository) GetByID(ctx context.Context, id string, companyID string) (wagefile.WageFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, batch_id, file_name, storage_path,
			   record_count, total_amount, warnings, status, generated_by,
			   created_at, updated_at
		FROM wage_files
		WHERE id = $1 AND company_id = $2
	`

	var f wagefile.WageFile
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&f.ID, &f.CompanyID, &f.BatchID, &f.FileName, &f.StoragePath,
		&f.RecordCount, &f.TotalAmount, &f.Warnings, &f.Status, &f.GeneratedBy,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return wagefile.WageFile{}, wagefile.ErrWageFileNotFound
		}
		return wagefile.WageFile{}, fmt.Errorf("failed to get wage file: %w", err)
	}

	return f, nil
}

func (r *wageFileRepository) ListByBatchID(ctx context.Context, batchID string, companyID string) ([]wagefile.WageFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, batch_id, file_name, storage_path,
			   record_count, total_amount, warnings, status, generated_by,
			   created_at, updated_at
		FROM wage_files
		WHERE batch_id = $1 AND company_id = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, batchID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage files: %w", err)
	}
	defer rows.Close()

	var files []wagefile.WageFile
	for rows.Next() {
		var f wagefile.WageFile
		if err := rows.Scan(
			&f.ID, &f.CompanyID, &f.BatchID, &f.FileName, &f.StoragePath,
			&f.RecordCount, &f.TotalAmount, &f.Warnings, &f.Status, &f.GeneratedBy,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wage file: %w", err)
		}
		files = append(files, f)
	}

	return files, nil
}

func (r *wageFileRepository) MarkDownloaded(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wage_files
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3
	`

	tag, err := q.Exec(ctx, query, wagefile.FileStatusDownloaded, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark wage file downloaded: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return wagefile.ErrWageFileNotFound
	}

	return nil
}
