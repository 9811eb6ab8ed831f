package logger

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"strings"
)

// SecurityLogger provides methods to safely log credentials and endpoints
type SecurityLogger struct {
	*Logger
}

// NewSecurityLogger creates a new security-aware logger
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		Logger: GetLogger(),
	}
}

// MaskSecret keeps the first two characters and a short hash of a secret
func (sl *SecurityLogger) MaskSecret(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return fmt.Sprintf("%s****#%s", secret[:2], sl.generateHash(secret)[:8])
}

// MaskAPIEndpoint keeps the host of an endpoint and hashes the rest
func (sl *SecurityLogger) MaskAPIEndpoint(apiURL string) string {
	if apiURL == "" {
		return ""
	}

	parsedURL, err := url.Parse(apiURL)
	if err != nil || parsedURL.Host == "" {
		return "api-endpoint#" + sl.generateHash(apiURL)[:8]
	}

	return fmt.Sprintf("%s/api#%s", parsedURL.Host, sl.generateHash(apiURL)[:8])
}

// MaskSensitiveData masks secrets and endpoints found in a field map
func (sl *SecurityLogger) MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))

	for key, value := range data {
		lowerKey := strings.ToLower(key)
		str, isString := value.(string)

		switch {
		case !isString:
			masked[key] = value
		case strings.Contains(lowerKey, "secret"),
			strings.Contains(lowerKey, "client_id"),
			strings.Contains(lowerKey, "password"):
			masked[key] = sl.MaskSecret(str)
		case strings.Contains(lowerKey, "endpoint"), strings.Contains(lowerKey, "url"):
			masked[key] = sl.MaskAPIEndpoint(str)
		default:
			masked[key] = value
		}
	}

	return masked
}

// SafeInfo logs an info message with masked fields
func (sl *SecurityLogger) SafeInfo(msg string, fields map[string]interface{}) {
	sl.Logger.WithFields(sl.MaskSensitiveData(fields)).Info(msg)
}

func (sl *SecurityLogger) generateHash(input string) string {
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash)
}

// GetSecurityLogger returns a security logger bound to the global logger
func GetSecurityLogger() *SecurityLogger {
	return NewSecurityLogger()
}
