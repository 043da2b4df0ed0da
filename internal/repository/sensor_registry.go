package repository

import (
	"context"
	"database/sql"
	"fmt"

	"AgriPulse/internal/domain/models"
	"AgriPulse/internal/domain/repository"
)

// StaticRegistry serves a fixed sensor fleet from configuration.
type StaticRegistry struct {
	sensors []models.Sensor
}

// NewStaticRegistry creates a registry over a fixed sensor list.
func NewStaticRegistry(sensors []models.Sensor) repository.Registry {
	return &StaticRegistry{sensors: sensors}
}

func (r *StaticRegistry) ActiveSensors(ctx context.Context) ([]models.Sensor, error) {
	out := make([]models.Sensor, len(r.sensors))
	copy(out, r.sensors)
	return out, nil
}

// ClickHouseSensorRegistry reads the sensor fleet from a sensors table.
type ClickHouseSensorRegistry struct {
	db    *sql.DB
	table string
}

// NewClickHouseSensorRegistry creates a registry backed by ClickHouse.
func NewClickHouseSensorRegistry(db *sql.DB, table string) repository.Registry {
	return &ClickHouseSensorRegistry{db: db, table: table}
}

func (r *ClickHouseSensorRegistry) ActiveSensors(ctx context.Context) ([]models.Sensor, error) {
	q := fmt.Sprintf("SELECT id, type_name, sensor_name, location FROM %s WHERE is_active = 1 ORDER BY id", r.table)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query sensors: %w", err)
	}
	defer rows.Close()

	var sensors []models.Sensor
	for rows.Next() {
		var s models.Sensor
		if err := rows.Scan(&s.ID, &s.Type, &s.Name, &s.Location); err != nil {
			return nil, err
		}
		sensors = append(sensors, s)
	}
	return sensors, rows.Err()
}
