package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtour-server/internal/store"
	"medtour-server/internal/store/storetest"
)

const sampleFile = `
doctors:
  - name: Dr. Wang
    hospital: Peking Union
    city: Beijing
    specialty: Cardiology
    languages: English, Chinese
    price: 300
  - name: Dr. Chen
    city: Shanghai
    specialty: Oncology
    price: 450
    image_url: https://img.example/chen.png
`

func TestParse(t *testing.T) {
	doctors, err := Parse([]byte(sampleFile))
	require.NoError(t, err)
	require.Len(t, doctors, 2)

	assert.Equal(t, "Dr. Wang", doctors[0].Name)
	assert.Equal(t, "Peking Union", doctors[0].Hospital)
	assert.Equal(t, 300, doctors[0].Price)
	assert.Equal(t, "https://img.example/chen.png", doctors[1].ImageURL)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("doctors:\n  - city: Beijing\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = Parse([]byte("doctors: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o600))

	doctors, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFake(t *testing.T) {
	doctors := Fake(20)
	require.Len(t, doctors, 20)
	for _, d := range doctors {
		assert.True(t, strings.HasPrefix(d.Name, "Dr. "))
		assert.NotEmpty(t, d.City)
		assert.Contains(t, specialties, d.Specialty)
		assert.GreaterOrEqual(t, d.Price, 100)
		assert.Zero(t, d.ID)
	}
}

func TestRun(t *testing.T) {
	s := storetest.New(t)
	doctors, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	n, err := Run(context.Background(), s, doctors)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stored, err := s.ListDoctors(context.Background(), store.AllCities)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Contains(t, stored[0].ImageURL, "Cardiology")
	assert.Equal(t, "https://img.example/chen.png", stored[1].ImageURL)
}
