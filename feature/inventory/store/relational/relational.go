// Package relational stores inventory records in a SQL table through gorm.
// MySQL, Postgres (including hosted Supabase) and SQLite are supported.
package relational

import (
	"context"
	"errors"
	"fmt"
	"time"

	"garment-stock/core/database"
	"garment-stock/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableName is the inventory table.
const TableName = "inventory_items"

// Item is the row model.
type Item struct {
	Key     string    `gorm:"column:item_key;primaryKey;size:512"`
	Type    string    `gorm:"column:type;size:32;index"`
	Code    string    `gorm:"column:code;size:128"`
	Color   string    `gorm:"column:color;size:64"`
	Size    string    `gorm:"column:size;size:16"`
	Fabric  string    `gorm:"column:fabric;size:64;index"`
	Qty     int       `gorm:"column:qty;not null"`
	Notes   string    `gorm:"column:notes;type:text"`
	AddedAt time.Time `gorm:"column:added_at"`
}

// TableName implements gorm's tabler.
func (Item) TableName() string {
	return TableName
}

// Columns lists the columns the store reads and writes.
var Columns = []string{"item_key", "type", "code", "color", "size", "fabric", "qty", "notes", "added_at"}

func fromRecord(r reconcile.Record) Item {
	return Item{
		Key: r.Key, Type: r.Type, Code: r.Code, Color: r.Color, Size: r.Size,
		Fabric: r.Fabric, Qty: r.Qty, Notes: r.Notes, AddedAt: r.AddedAt.UTC(),
	}
}

func (m Item) toRecord() reconcile.Record {
	return reconcile.Record{
		Key: m.Key, Type: m.Type, Code: m.Code, Color: m.Color, Size: m.Size,
		Fabric: m.Fabric, Qty: m.Qty, Notes: m.Notes, AddedAt: m.AddedAt.UTC(),
	}
}

// Store implements reconcile.Store over a gorm connection.
type Store struct {
	db *gorm.DB
}

// New creates a store. Call Migrate once before first use on a fresh database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the inventory table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Item{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return s.binaryKeys(ctx)
}

// binaryKeys switches item_key to a byte-wise collation on MySQL, whose
// default collation treats "CAFÉ" and "cafe" as the same primary key. SQLite
// and Postgres already compare keys byte for byte.
func (s *Store) binaryKeys(ctx context.Context) error {
	if s.db.Dialector.Name() != "mysql" {
		return nil
	}
	err := s.db.WithContext(ctx).Exec(
		"ALTER TABLE `" + TableName + "` MODIFY `item_key` VARCHAR(512) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
	).Error
	if err != nil {
		return fmt.Errorf("failed to set binary collation on %s.item_key: %w", TableName, err)
	}
	return nil
}

// MissingColumns reports expected columns absent from the live table.
func (s *Store) MissingColumns(ctx context.Context) ([]string, error) {
	return database.MissingColumns(s.db.WithContext(ctx), TableName, Columns)
}

func (s *Store) GetAll(ctx context.Context) ([]reconcile.Record, error) {
	var rows []Item
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	out := make([]reconcile.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toRecord())
	}
	return out, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (*reconcile.Record, error) {
	var row Item
	err := s.db.WithContext(ctx).Where("item_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	rec := row.toRecord()
	return &rec, nil
}

// Upsert inserts the row or replaces every column on key conflict, in one
// statement.
func (s *Store) Upsert(ctx context.Context, rec reconcile.Record) error {
	row := fromRecord(rec)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_key"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %q: %w", rec.Key, err)
	}
	return nil
}

func (s *Store) UpdateQuantity(ctx context.Context, key string, qty int) error {
	res := s.db.WithContext(ctx).Model(&Item{}).Where("item_key = ?", key).Update("qty", qty)
	if res.Error != nil {
		return fmt.Errorf("failed to update %q: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record %q does not exist", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("item_key = ?", key).Delete(&Item{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// DeleteBatch removes every key with one IN query.
func (s *Store) DeleteBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("item_key IN ?", keys).Delete(&Item{}).Error; err != nil {
		return fmt.Errorf("failed to delete %d keys: %w", len(keys), err)
	}
	return nil
}
