// Package store is the data access layer for doctors and bookings.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"medtour-server/internal/database"
	"medtour-server/internal/models"
)

// AllCities is the city filter value that disables filtering.
const AllCities = "All"

// DoctorRepository covers the doctor listing operations.
type DoctorRepository interface {
	ListDoctors(ctx context.Context, city string) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	UpdateDoctor(ctx context.Context, id uint, doctor *models.Doctor) error
	DeleteDoctor(ctx context.Context, id uint) error
}

// AppointmentRepository covers bookings and the admin order view.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appt *models.Appointment) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// Store implements both repositories on top of gorm. The bind-variable
// syntax of the active backend is rendered by its gorm Dialector.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an open pool.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListDoctors returns all doctors, or only those in city when city is set
// and not "All". The result is never nil.
func (s *Store) ListDoctors(ctx context.Context, city string) ([]models.Doctor, error) {
	q := s.db.WithContext(ctx).Order("id")
	if city != "" && city != AllCities {
		q = q.Where("city = ?", city)
	}

	doctors := []models.Doctor{}
	if err := q.Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}

func (s *Store) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	doctor.ID = 0
	if err := s.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

// UpdateDoctor overwrites every column of the row with the given id. Zero
// values are written too; this is a full replace, not a patch. A missing id
// is not an error.
func (s *Store) UpdateDoctor(ctx context.Context, id uint, doctor *models.Doctor) error {
	err := s.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        doctor.Name,
		"hospital":    doctor.Hospital,
		"city":        doctor.City,
		"specialty":   doctor.Specialty,
		"languages":   doctor.Languages,
		"price":       doctor.Price,
		"description": doctor.Description,
		"image_url":   doctor.ImageURL,
	}).Error
	if err != nil {
		return fmt.Errorf("update doctor %d: %w", id, err)
	}
	doctor.ID = id
	return nil
}

// DeleteDoctor removes the row with the given id. Bookings that reference
// it are kept and show up in orders without a doctor name.
func (s *Store) DeleteDoctor(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Doctor{}, id).Error; err != nil {
		return fmt.Errorf("delete doctor %d: %w", id, err)
	}
	return nil
}

// CreateAppointment inserts a booking. The status is always Pending,
// whatever the caller set.
func (s *Store) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	appt.ID = 0
	appt.Status = models.StatusPending
	if err := s.db.WithContext(ctx).Create(appt).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

// ListOrders returns every booking joined with its doctor's name, newest id first.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Table("appointments AS a").
		Select("a.*, d.name AS doctor_name").
		Joins("LEFT JOIN doctors d ON a.doctor_id = d.id").
		Order("a.id DESC").
		Scan(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Ping checks the underlying pool.
func (s *Store) Ping(ctx context.Context) error {
	return database.Ping(ctx, s.db)
}
