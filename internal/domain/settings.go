package domain

import "time"

const DefaultSessionTimeout = 5 * time.Second

type Settings struct {
	Hosts          string
	SessionTimeout time.Duration
	LogLevel       string
}

func DefaultSettings() Settings {
	return Settings{
		SessionTimeout: DefaultSessionTimeout,
		LogLevel:       "warn",
	}
}
