package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// SuperAdminEmail identifies the distinguished admin account. Only this
// account may create further admin accounts, and it is seeded at startup.
const SuperAdminEmail = "accvalongo@gmail.com"

var (
	// Default allowed origins for the public API frontend
	defaultOrigins = []string{
		"https://gpazdluh.manus.space",
		"https://gbtmwecv.manus.space",
		"https://jomdceve.manus.space",
		"https://wrggdzow.manus.space",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
