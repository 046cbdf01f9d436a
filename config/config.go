package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Postgres    PostgresConfig
	HTTP        HTTPConfig
	Blog        BlogConfig
	StorageType string
}

type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type HTTPConfig struct {
	Port          string
	SessionSecret string
}

type BlogConfig struct {
	// CommentMinIdleSeconds is the minimum pause between two comments from
	// the same identity; 0 disables the gate.
	CommentMinIdleSeconds int
	// CommentMaxLinks demotes otherwise approved comments carrying at least
	// this many links; 0 means any link.
	CommentMaxLinks int
	// CommentRequireNameEmail rejects anonymous comments without both.
	CommentRequireNameEmail bool
	// SpamBlocklist is a comma-separated list of rejected terms.
	SpamBlocklist []string
	// PermsEveryone is a comma-separated list of permissions every viewer
	// holds, anonymous ones included.
	PermsEveryone []string
	// PermsUsers grants permissions per user id, parsed from entries of the
	// form "7:skip-comment-approval,skip-comment-min-idle" joined by ";".
	PermsUsers map[int64][]string
}

func LoadConfig() Config {
	storageType := mustGetEnv("STORAGE_TYPE")

	cfg := Config{
		StorageType: storageType,
		HTTP: HTTPConfig{
			Port:          mustGetEnv("HTTP_PORT"),
			SessionSecret: mustGetEnv("SESSION_SECRET"),
		},
		Blog: BlogConfig{
			CommentMinIdleSeconds:   getIntDefault("COMMENT_MIN_IDLE_SECONDS", 0),
			CommentMaxLinks:         getIntDefault("COMMENT_MAX_LINKS", 2),
			CommentRequireNameEmail: getBoolDefault("COMMENT_REQUIRE_NAME_EMAIL", false),
			SpamBlocklist:           getListDefault("SPAM_BLOCKLIST", nil),
			PermsEveryone:           getListDefault("PERMS_EVERYONE", []string{"post-comments"}),
			PermsUsers:              parseUserPerms(os.Getenv("PERMS_USERS")),
		},
	}

	if storageType == "postgres" {
		cfg.Postgres = PostgresConfig{
			User:     mustGetEnv("POSTGRES_USER"),
			Password: mustGetEnv("POSTGRES_PASSWORD"),
			DB:       mustGetEnv("POSTGRES_DB"),
			Host:     mustGetEnv("POSTGRES_HOST"),
			Port:     mustGetInt("POSTGRES_PORT"),
			SSLMode:  mustGetEnv("POSTGRES_SSLMODE"),
		}
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func mustGetInt(key string) int {
	val := mustGetEnv(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getIntDefault(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func getBoolDefault(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		panic("invalid bool for env var " + key + ": " + val)
	}
	return b
}

// parseUserPerms parses per-user permission grants. Entries are separated by
// ";", each entry is "<user id>:<perm>[,<perm>...]". An empty value yields an
// empty table.
func parseUserPerms(val string) map[int64][]string {
	out := make(map[int64][]string)
	if strings.TrimSpace(val) == "" {
		return out
	}
	for _, entry := range strings.Split(val, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		idPart, permsPart, found := strings.Cut(entry, ":")
		if !found {
			panic("invalid PERMS_USERS entry: " + entry)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil {
			panic("invalid user id in PERMS_USERS entry: " + entry)
		}
		for _, p := range strings.Split(permsPart, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out[id] = append(out[id], p)
			}
		}
	}
	return out
}

func getListDefault(key string, def []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
