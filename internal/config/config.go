package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SlackBotToken      string
	DatabasePath       string
	Port               string
	CommunityChannelID string
	AdminUserIDs       []string
	DaysBefore         int
	DaysAfter          int
	CardNumber         string
	CycleCron          string
	InvitePause        time.Duration
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./partybot.db"),
		Port:               getEnv("PORT", "3000"),
		CommunityChannelID: getEnv("COMMUNITY_CHANNEL_ID", ""),
		AdminUserIDs:       getEnvList("ADMIN_USER_IDS"),
		DaysBefore:         getEnvInt("DAYS_BEFORE", 7),
		DaysAfter:          getEnvInt("DAYS_AFTER", 2),
		CardNumber:         getEnv("CARD_NUMBER", ""),
		CycleCron:          getEnv("CYCLE_CRON", "0 9 * * *"),
		InvitePause:        getEnvDuration("INVITE_PAUSE", 5*time.Second),
	}
}

func (c *Config) IsAdmin(slackUserID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == slackUserID {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
