package user

import (
	"os"
	"os/user"
)

// CurrentUsername returns the current system username, which scopes all
// columns and board cards. It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func CurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
