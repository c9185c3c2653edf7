package config

import (
	"strconv"
	"time"

	"github.com/jamalimubashirali/Identity-Managemnet-IAM/internal/logger"
)

// Session store driver names.
const (
	SessionStoreMemory   = "memory"
	SessionStoreMySQL    = "mysql"
	SessionStorePostgres = "postgres"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
	CookieName string // cookie carrying the session id, defaults to "session"
}

// Config overall data structure.
type Config struct {
	DevMode      bool // enable dev mode for development
	Title        string
	Log          logger.Log
	Webserver    Webserver
	Backend      Backend
	SessionStore SessionStore
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// ListenAddr returns the address the webserver binds to.
func (w Webserver) ListenAddr() string {
	return ":" + strconv.Itoa(w.Port)
}

// Backend holds the connection settings for the remote IAM API.
// The API owns all users, roles, permissions, and the audit trail;
// this service is only a client of it.
type Backend struct {
	URL          string        // base url of the IAM API, e.g. https://iam.example.com/api
	Timeout      time.Duration // per request client-side timeout
	RetryMax     int           // maximum transport-level retries
	RetryWaitMax time.Duration // maximum backoff between retries
}

// SessionStore selects and configures the durable key-value storage
// backing browser sessions.
type SessionStore struct {
	Driver   string // memory, mysql or postgres
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Table    string // defaults to "sessions"
	SSLMode  string // postgres only
}
