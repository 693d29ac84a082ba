package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mapgen/internal/terrain"
)

// MapRow is the database row of a stored map.
type MapRow struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Seed      string    `gorm:"not null"`
	Size      int32     `gorm:"not null"`
	Walkers   int32     `gorm:"not null"`
	Steps     int32     `gorm:"not null"`
	Snapshot  []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (MapRow) TableName() string { return "maps" }

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// GormStore keeps records in a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) GormStore {
	return GormStore{db: db}
}

// AutoMigrate creates or updates the maps table.
func (s GormStore) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&MapRow{}); err != nil {
		return fmt.Errorf("migrate maps: %w", err)
	}
	return nil
}

func (s GormStore) Save(ctx context.Context, rec Record) error {
	row, err := toRow(rec)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"seed", "size", "walkers", "steps", "snapshot"}),
	}).Create(&row).Error
}

func (s GormStore) Get(ctx context.Context, id string) (Record, error) {
	var row MapRow
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return fromRow(row)
}

func (s GormStore) List(ctx context.Context, limit int) ([]Record, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []MapRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toRow(rec Record) (MapRow, error) {
	b, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return MapRow{}, fmt.Errorf("encode snapshot %s: %w", rec.ID, err)
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return MapRow{
		ID:        rec.ID,
		Seed:      rec.Seed,
		Size:      int32(rec.Size),
		Walkers:   int32(rec.Walkers),
		Steps:     int32(rec.Steps),
		Snapshot:  b,
		CreatedAt: created,
	}, nil
}

func fromRow(row MapRow) (Record, error) {
	var snap terrain.Snapshot
	if len(row.Snapshot) > 0 {
		if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
			return Record{}, fmt.Errorf("decode snapshot %s: %w", row.ID, err)
		}
	}
	return Record{
		ID:        row.ID,
		Seed:      row.Seed,
		Size:      int(row.Size),
		Walkers:   int(row.Walkers),
		Steps:     int(row.Steps),
		Snapshot:  snap,
		CreatedAt: row.CreatedAt,
	}, nil
}
