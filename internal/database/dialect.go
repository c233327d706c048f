// Package database selects the relational backend, opens the pooled
// connection and creates the schema.
package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"

	"medtour-server/internal/config"
)

// Dialect is everything that differs between backends. Placeholder syntax
// lives in the gorm Dialector (`?` for sqlite and mysql, `$n` for postgres)
// so SQL written by the store never spells it out.
type Dialect interface {
	Name() string
	Dialector(dsn string) gorm.Dialector
	// Schema returns idempotent CREATE TABLE statements in execution order.
	Schema() []string
	MaxOpenConns() int
}

var ErrMalformedDSN = errors.New("malformed database connection string")

// Resolve picks the dialect and the normalized DSN for cfg. A client-server
// URL wins over the embedded file; DB_DRIVER overrides detection.
func Resolve(cfg config.DatabaseConfig) (Dialect, string, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = detectDriver(cfg.URL)
	}

	switch driver {
	case "postgres":
		if cfg.URL == "" {
			return nil, "", fmt.Errorf("%w: DATABASE_URL is required for postgres", ErrMalformedDSN)
		}
		if _, err := pgx.ParseConfig(cfg.URL); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrMalformedDSN, err)
		}
		return Postgres{}, cfg.URL, nil
	case "mysql":
		dsn, err := normalizeMySQLDSN(cfg.URL)
		if err != nil {
			return nil, "", err
		}
		return MySQL{}, dsn, nil
	default:
		path := cfg.SQLitePath
		if path == "" {
			path = config.DefaultSQLitePath
		}
		return SQLite{}, path, nil
	}
}

func detectDriver(raw string) string {
	switch {
	case raw == "":
		return "sqlite"
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(raw, "mysql://"), strings.Contains(raw, "@tcp("), strings.Contains(raw, "@unix("):
		return "mysql"
	default:
		// keyword/value DSNs and anything unrecognised go to pgx, which rejects garbage
		return "postgres"
	}
}

// normalizeMySQLDSN accepts a go-sql-driver DSN or a mysql:// URL and returns
// a driver DSN with parseTime enabled so TIMESTAMP columns scan into time.Time.
func normalizeMySQLDSN(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: DATABASE_URL is required for mysql", ErrMalformedDSN)
	}

	dsn := raw
	if strings.HasPrefix(raw, "mysql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedDSN, err)
		}
		var userinfo string
		if u.User != nil {
			userinfo = u.User.Username()
			if pw, ok := u.User.Password(); ok {
				userinfo += ":" + pw
			}
			userinfo += "@"
		}
		dsn = fmt.Sprintf("%stcp(%s)%s", userinfo, u.Host, u.Path)
		if u.RawQuery != "" {
			dsn += "?" + u.RawQuery
		}
	}

	mcfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDSN, err)
	}
	mcfg.ParseTime = true
	return mcfg.FormatDSN(), nil
}
