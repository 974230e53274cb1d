package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wayfinding/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository loads the directory catalog from PostgreSQL. It is a
// startup-time loader only: the catalog is read once and the admin
// map-editor tooling owns all mutation.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadBuildings reads the building catalog in its configured display order.
func (r *PostgresRepository) LoadBuildings(ctx context.Context) ([]model.Building, error) {
	query := `
		SELECT code, name, floors, category
		FROM buildings
		ORDER BY sort_order, code`

	var buildings []model.Building
	if err := r.db.SelectContext(ctx, &buildings, query); err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}

	return buildings, nil
}

// LoadRooms reads the room index keyed by building code and floor label.
func (r *PostgresRepository) LoadRooms(ctx context.Context) (map[string]map[string][]model.Room, error) {
	query := `
		SELECT building_code, floor, code, name, room_type
		FROM rooms
		ORDER BY building_code, floor, sort_order, code`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	defer rows.Close()

	index := make(map[string]map[string][]model.Room)
	for rows.Next() {
		var (
			buildingCode string
			floor        string
			room         model.Room
		)
		if err := rows.Scan(&buildingCode, &floor, &room.Code, &room.Name, &room.Type); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}

		if index[buildingCode] == nil {
			index[buildingCode] = make(map[string][]model.Room)
		}
		index[buildingCode][floor] = append(index[buildingCode][floor], room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read room rows: %w", err)
	}

	return index, nil
}
