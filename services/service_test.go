package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"saapaadu-api/config"
	"saapaadu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB points the package-global config.DB at a throwaway sqlite file and
// migrates the schema.
func setupDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
}

// recordingMailer captures sends; failFor addresses return an error to
// exercise per-recipient isolation.
type recordingMailer struct {
	sent    []sentMail
	failFor map[string]bool
}

type sentMail struct {
	To      string
	Subject string
	Text    string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, text string) error {
	if m.failFor[to] {
		return fmt.Errorf("smtp says no for %s", to)
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Text: text})
	return nil
}

func installMailer(t *testing.T) *recordingMailer {
	t.Helper()
	rec := &recordingMailer{failFor: map[string]bool{}}
	prev := Mail
	Mail = rec
	t.Cleanup(func() { Mail = prev })
	return rec
}

// signupVendor registers a vendor with a complete shop profile.
func signupVendor(t *testing.T, email, area string) *models.User {
	t.Helper()
	user, err := Signup(SignupInput{
		Username:    "vendor-" + email,
		Email:       email,
		Password:    "secret123",
		Role:        models.RoleVendor,
		VegNonVeg:   models.DietVeg,
		ShopName:    "X",
		ShopAddress: "Y",
		Area:        area,
		City:        "Chennai",
		State:       "TN",
	})
	require.NoError(t, err)
	return user
}

// signupCustomer registers a customer living in the given area.
func signupCustomer(t *testing.T, email, area string) *models.User {
	t.Helper()
	user, err := Signup(SignupInput{
		Username:  "customer-" + email,
		Email:     email,
		Password:  "secret123",
		Role:      models.RoleCustomer,
		VegNonVeg: models.DietVeg,
		Area:      area,
		City:      "Chennai",
		State:     "TN",
	})
	require.NoError(t, err)
	return user
}

func createHotspot(t *testing.T, vendorUserID uint, in CreateHotspotInput) *models.Hotspot {
	t.Helper()
	hotspot, err := CreateHotspot(context.Background(), vendorUserID, in)
	require.NoError(t, err)
	return hotspot
}
