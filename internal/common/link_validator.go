package common

import (
	"errors"
	"regexp"
	"strings"
)

// ErrBlockedLink is returned when post content carries a blocked tracker link
var ErrBlockedLink = errors.New("links from tracking shorteners are not allowed")

// Shortener domains that wrap tracking or IP-logging redirects
var blockedLinkDomains = []string{
	"grabify.link",
	"iplogger.org",
	"iplogger.com",
	"2no.co",
	"yip.su",
}

// URL pattern to extract links from content
var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// containsBlockedDomain checks if content contains any blocked domain links
func containsBlockedDomain(content string, blockedDomains []string) bool {
	urls := urlPattern.FindAllString(content, -1)

	for _, url := range urls {
		urlLower := strings.ToLower(url)
		for _, domain := range blockedDomains {
			if strings.Contains(urlLower, domain) {
				return true
			}
		}
	}
	return false
}

// ValidateContentLinks screens post or quote content for blocked tracker
// links. Returns ErrBlockedLink if any are found.
func ValidateContentLinks(content string) error {
	if containsBlockedDomain(content, blockedLinkDomains) {
		return ErrBlockedLink
	}
	return nil
}
