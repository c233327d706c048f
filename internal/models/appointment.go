package models

import (
	"time"
)

// StatusPending is the status every new booking starts with. The column is
// free text; nothing in the application moves a booking out of it.
const StatusPending = "Pending"

// Appointment represents a booking request sent from the public site
type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DoctorID    int       `json:"doctor_id"`
	PatientName string    `json:"patient_name"`
	Contact     string    `json:"contact"`
	Date        string    `json:"date"`
	Symptoms    string    `json:"symptoms"`
	Status      string    `gorm:"default:Pending" json:"status"`
	PaymentID   string    `gorm:"column:payment_id" json:"payment_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName pins the table name used by the schema DDL.
func (Appointment) TableName() string {
	return "appointments"
}

// Order is an appointment joined with the name of the booked doctor.
// DoctorName is nil when the doctor no longer exists.
type Order struct {
	Appointment
	DoctorName *string `json:"doctor_name"`
}
