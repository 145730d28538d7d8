package repository

import (
	"context"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

type SettingsRepository struct {
	DB *db.Postgres
}

func (r SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT company_name, company_address, currency_code, updated_at
		FROM settings
		WHERE id=1
	`)
	var s domain.Settings
	if err := row.Scan(&s.CompanyName, &s.CompanyAddress, &s.CurrencyCode, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r SettingsRepository) Save(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO settings (id, company_name, company_address, currency_code, updated_at)
		VALUES (1,$1,$2,$3, now())
		ON CONFLICT (id) DO UPDATE SET
			company_name=EXCLUDED.company_name,
			company_address=EXCLUDED.company_address,
			currency_code=EXCLUDED.currency_code,
			updated_at=now()
		RETURNING company_name, company_address, currency_code, updated_at
	`, s.CompanyName, s.CompanyAddress, s.CurrencyCode).Scan(
		&s.CompanyName, &s.CompanyAddress, &s.CurrencyCode, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
