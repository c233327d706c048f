package database

import (
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite is the embedded file-based backend.
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Dialector(dsn string) gorm.Dialector { return sqlite.Open(dsn) }

// A single writer avoids "database is locked" errors on the file.
func (SQLite) MaxOpenConns() int { return 1 }

func (SQLite) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS doctors (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, hospital TEXT, city TEXT, specialty TEXT, languages TEXT, price INTEGER, description TEXT, image_url TEXT)`,
		`CREATE TABLE IF NOT EXISTS appointments (id INTEGER PRIMARY KEY AUTOINCREMENT, doctor_id INTEGER, patient_name TEXT, contact TEXT, date TEXT, symptoms TEXT, status TEXT DEFAULT 'Pending', payment_id TEXT, created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
	}
}

// Postgres is the client-server backend reached through pgx.
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) Dialector(dsn string) gorm.Dialector { return postgres.Open(dsn) }

func (Postgres) MaxOpenConns() int { return 10 }

func (Postgres) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS doctors (id SERIAL PRIMARY KEY, name TEXT, hospital TEXT, city TEXT, specialty TEXT, languages TEXT, price INTEGER, description TEXT, image_url TEXT)`,
		`CREATE TABLE IF NOT EXISTS appointments (id SERIAL PRIMARY KEY, doctor_id INTEGER, patient_name TEXT, contact TEXT, date TEXT, symptoms TEXT, status TEXT DEFAULT 'Pending', payment_id TEXT, created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
	}
}

// MySQL is the second client-server backend.
type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) Dialector(dsn string) gorm.Dialector { return gormmysql.Open(dsn) }

func (MySQL) MaxOpenConns() int { return 10 }

// TEXT columns cannot carry a DEFAULT on older MySQL, hence VARCHAR for status.
func (MySQL) Schema() []string {
	return []string{
		"CREATE TABLE IF NOT EXISTS doctors (id INT AUTO_INCREMENT PRIMARY KEY, name TEXT, hospital TEXT, city VARCHAR(255), specialty TEXT, languages TEXT, price INT, description TEXT, image_url TEXT) DEFAULT CHARSET=utf8mb4",
		"CREATE TABLE IF NOT EXISTS appointments (id INT AUTO_INCREMENT PRIMARY KEY, doctor_id INT, patient_name TEXT, contact TEXT, `date` TEXT, symptoms TEXT, status VARCHAR(32) DEFAULT 'Pending', payment_id TEXT, created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP) DEFAULT CHARSET=utf8mb4",
	}
}
