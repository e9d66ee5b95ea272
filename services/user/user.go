package user

import (
	"strings"

	"travelagent/models"
	"travelagent/utils"
)

func NewUserService() *DefaultUserService {
	return &DefaultUserService{
		profile: models.UserProfile{ID: 1, Email: "user@example.com", Name: "John Doe"},
		preferences: map[string]interface{}{
			"language":      "en",
			"currency":      "USD",
			"notifications": true,
		},
	}
}

func (s *DefaultUserService) GetProfile() models.UserProfile {
	return s.profile
}

func (s *DefaultUserService) GetPreferences() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]interface{}, len(s.preferences))
	for k, v := range s.preferences {
		out[k] = v
	}
	return out
}

func (s *DefaultUserService) UpdatePreferences(updates map[string]interface{}) (map[string]interface{}, error) {
	if len(updates) == 0 {
		return nil, utils.NewValidationError("preferences", "No preferences provided")
	}
	for k := range updates {
		if strings.TrimSpace(k) == "" {
			return nil, utils.NewValidationError("preferences", "Preference names must not be empty")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		s.preferences[k] = v
		applied[k] = v
	}
	return applied, nil
}
