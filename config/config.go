package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS  = ""             // e.g. "example.com,example2.com"
	DATABASE_URL = ""             // PostgreSQL will be used if this is set
	MYSQL_DSN    = ""             // MySQL will be used if DATABASE_URL is not set and this is
	SQLITE_FILE  = "/tmp/test.db" // SQLite is the fallback when neither of the above is configured
	BIND_ADDRESS = "0.0.0.0:3000"
	DEBUG_MODE   = true
)

func init() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("DATABASE_URL", &DATABASE_URL)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)

	port := 0
	readEnvInt("PORT", &port)
	if port > 0 {
		BIND_ADDRESS = withPort(BIND_ADDRESS, port)
	}
	DATABASE_URL = normalizePostgresURL(DATABASE_URL)
}

// withPort replaces the port part of a host:port bind address
func withPort(bind string, port int) string {
	host := bind
	if i := strings.LastIndex(bind, ":"); i >= 0 {
		host = bind[:i]
	}
	return host + ":" + strconv.Itoa(port)
}

// Some hosting providers still hand out the legacy "postgres://" scheme
func normalizePostgresURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
