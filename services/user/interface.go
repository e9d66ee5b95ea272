package user

import (
	"sync"

	"travelagent/models"
)

// UserService serves the demo profile and its preferences.
type UserService interface {
	// GetProfile returns the single demo user.
	GetProfile() models.UserProfile
	// GetPreferences returns a copy of the stored preferences.
	GetPreferences() map[string]interface{}
	// UpdatePreferences merges updates into the stored preferences and
	// returns the keys that were applied.
	UpdatePreferences(updates map[string]interface{}) (map[string]interface{}, error)
}

// DefaultUserService keeps preferences in memory for the process lifetime.
type DefaultUserService struct {
	mu          sync.RWMutex
	profile     models.UserProfile
	preferences map[string]interface{}
}
