package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"streetshine/internal/db"
)

// The service_info table holds exactly one row. Reads before the first admin
// save fall back to the launch defaults.
var defaultServiceInfo = db.ServiceInfo{
	Hours: "Mon – Sun: 8:00 AM – 6:00 PM",
	Area:  "Serving Van Nuys, CA and all of Los Angeles County",
}

type ServiceInfoRepository struct {
	DB *sql.DB
}

func NewServiceInfoRepository(database *sql.DB) *ServiceInfoRepository {
	return &ServiceInfoRepository{DB: database}
}

func (r *ServiceInfoRepository) GetServiceInfo(ctx context.Context) (*db.ServiceInfo, error) {
	var info db.ServiceInfo
	err := r.DB.QueryRowContext(ctx, `SELECT hours, area FROM service_info WHERE id = 1`).
		Scan(&info.Hours, &info.Area)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			info = defaultServiceInfo
			return &info, nil
		}
		return nil, fmt.Errorf("error querying service info: %w", err)
	}
	return &info, nil
}

func (r *ServiceInfoRepository) UpdateServiceInfo(ctx context.Context, info *db.ServiceInfo) error {
	query := `
		INSERT INTO service_info (id, hours, area, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET hours = $1, area = $2, updated_at = NOW()`
	if _, err := r.DB.ExecContext(ctx, query, info.Hours, info.Area); err != nil {
		return fmt.Errorf("error updating service info: %w", err)
	}
	return nil
}
