package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	DataDir      string
	WorkbookPath string
	UploadsDir   string
	JWTSecret    string
	GelfAddr     string
	CORSOrigin   string
	// Users maps login username to bcrypt password hash. Populated from
	// FD_USERS ("alice:$2a$...,bob:$2a$..."); no plaintext passwords.
	Users map[string]string
}

func Load() *Config {
	// .env is optional; real env vars win either way.
	godotenv.Load()

	dataDir := getEnv("FD_DATA_DIR", "data")
	return &Config{
		HTTPAddr:     getEnv("FD_ADDR", ":8080"),
		DataDir:      dataDir,
		WorkbookPath: getEnv("FD_WORKBOOK", dataDir+"/submissions.fwb"),
		UploadsDir:   getEnv("FD_UPLOADS_DIR", dataDir+"/uploads"),
		JWTSecret:    getEnv("FD_JWT_SECRET", "featuredesk-dev-secret-change-me"),
		GelfAddr:     getEnv("FD_GELF_ADDR", ""),
		CORSOrigin:   getEnv("FD_CORS_ORIGIN", "*"),
		Users:        parseUsers(os.Getenv("FD_USERS")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseUsers(raw string) map[string]string {
	users := map[string]string{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, hash, ok := strings.Cut(entry, ":")
		if !ok || name == "" || hash == "" {
			continue
		}
		users[name] = hash
	}
	return users
}
