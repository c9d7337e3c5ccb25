package database

import (
	"errors"

	"salesmgt/internal/models"

	"gorm.io/gorm"
)

// EnsureProfile enforces the one-profile-per-user invariant. Called
// synchronously after every user create and update: on first save it creates
// the profile, and if a profile has gone missing it recreates one. The slug
// derives from the account email (falling back to the username).
func EnsureProfile(db *gorm.DB, user *models.User) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_id = ?", user.ID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	source := user.Email
	if source == "" {
		source = user.Username
	}
	slug, err := UniqueSlug(db, &models.Profile{}, source)
	if err != nil {
		return nil, err
	}

	profile = models.Profile{
		UserID: user.ID,
		Slug:   slug,
		Status: models.StatusInactive,
	}
	if err := db.Omit("User").Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
