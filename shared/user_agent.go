package shared

import (
	"fmt"
	"net/http"
)

const userAgentTemplate = "SocialOSINT/%s (+https://github.com/social-osint)"

// Version is overridden at build time with -ldflags "-X social_osint/shared.Version=..."
var Version = "0.4.0"

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_agent.go -package mocks social_osint/shared IUserAgent

type IUserAgent interface {
	AddUserAgent(req *http.Request)
	Value() string
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(cfg),
	}
}

func buildUserAgentString(cfg *Config) string {
	return fmt.Sprintf(userAgentTemplate, Version)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}

func (ua *userAgent) Value() string {
	return ua.userAgentValue
}
