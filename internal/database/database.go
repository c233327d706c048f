package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the backend described by d and dsn and verifies the
// connection with a ping. The returned handle is a connection pool shared by
// every request.
func Open(ctx context.Context, d Dialect, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(d.Dialector(dsn), &gorm.Config{
		Logger: gormlogger.New(gormWriter{log: log}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get %s pool: %w", d.Name(), err)
	}
	sqlDB.SetMaxOpenConns(d.MaxOpenConns())
	sqlDB.SetMaxIdleConns(d.MaxOpenConns())
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name(), err)
	}

	return db, nil
}

// gormWriter routes gorm's warnings and slow-query reports into zerolog.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// InitSchema creates the tables if they are missing. Running it against a
// populated database is a no-op.
func InitSchema(ctx context.Context, db *gorm.DB, d Dialect) error {
	for _, stmt := range d.Schema() {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("init %s schema: %w", d.Name(), err)
		}
	}
	return nil
}

// Ping checks that the pool can still reach the backend.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
