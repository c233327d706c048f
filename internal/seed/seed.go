// Package seed fills the doctors table from a YAML file or with generated
// demo data.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"

	"medtour-server/internal/models"
	"medtour-server/internal/store"
)

var specialties = []string{
	"Cardiology",
	"Oncology",
	"Orthopedics",
	"Neurology",
	"Ophthalmology",
	"Dermatology",
	"Traditional Chinese Medicine",
	"Dentistry",
}

var languages = []string{
	"English",
	"English, Chinese",
	"English, Arabic",
	"English, Russian",
	"Chinese",
}

// DoctorEntry is one doctor in a seed file.
type DoctorEntry struct {
	Name        string `yaml:"name"`
	Hospital    string `yaml:"hospital"`
	City        string `yaml:"city"`
	Specialty   string `yaml:"specialty"`
	Languages   string `yaml:"languages"`
	Price       int    `yaml:"price"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
}

// File is the layout of a seed file:
//
//	doctors:
//	  - name: Dr. Wang
//	    city: Beijing
//	    price: 300
type File struct {
	Doctors []DoctorEntry `yaml:"doctors"`
}

// Parse decodes seed data. Every doctor needs a name.
func Parse(data []byte) ([]models.Doctor, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	doctors := make([]models.Doctor, 0, len(f.Doctors))
	for i, e := range f.Doctors {
		if e.Name == "" {
			return nil, fmt.Errorf("seed doctor %d: name is required", i+1)
		}
		doctors = append(doctors, models.Doctor{
			Name:        e.Name,
			Hospital:    e.Hospital,
			City:        e.City,
			Specialty:   e.Specialty,
			Languages:   e.Languages,
			Price:       e.Price,
			Description: e.Description,
			ImageURL:    e.ImageURL,
		})
	}
	return doctors, nil
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) ([]models.Doctor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Fake generates n random doctors.
func Fake(n int) []models.Doctor {
	doctors := make([]models.Doctor, 0, n)
	for i := 0; i < n; i++ {
		specialty := specialties[gofakeit.Number(0, len(specialties)-1)]
		city := gofakeit.City()
		doctors = append(doctors, models.Doctor{
			Name:        "Dr. " + gofakeit.Name(),
			Hospital:    gofakeit.Company() + " Hospital",
			City:        city,
			Specialty:   specialty,
			Languages:   languages[gofakeit.Number(0, len(languages)-1)],
			Price:       gofakeit.Number(2, 40) * 50,
			Description: fmt.Sprintf("%s specialist practising in %s.", specialty, city),
		})
	}
	return doctors
}

// Run inserts doctors through the repository and returns how many were
// written. Missing images get the specialty placeholder.
func Run(ctx context.Context, repo store.DoctorRepository, doctors []models.Doctor) (int, error) {
	for i := range doctors {
		d := doctors[i]
		d.EnsureImage()
		if err := repo.CreateDoctor(ctx, &d); err != nil {
			return i, fmt.Errorf("seed doctor %q: %w", d.Name, err)
		}
	}
	return len(doctors), nil
}
