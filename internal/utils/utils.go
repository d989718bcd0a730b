package utils

import (
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether a remote call failed in a way that is worth
// one more attempt (transient transport or server-side errors).
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// APIStatusCode extracts the HTTP status of a chat-completion error, or 0
// when the error carries none. Used to pick the 429/402-specific messages.
func APIStatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	return 0
}

// OnlyDigits strips every non-digit rune.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppNumber normalizes a Brazilian phone string for wa.me deep links:
// digits only, country code 55 prefixed when missing.
func WhatsAppNumber(phone string) string {
	digits := OnlyDigits(phone)
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits
}

// Truncate cuts s to max runes, appending an ellipsis when something was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// StripCodeFences removes a surrounding markdown code fence, if any.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```html")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}

// ExtractJSONObject locates the outermost {...} span in an LLM reply. Models
// often wrap the payload in prose or fences, so the first '{' and the last
// '}' bound what gets parsed.
func ExtractJSONObject(s string) (string, bool) {
	cleaned := StripCodeFences(s)
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// ExtractHTMLDocument trims an LLM reply down to the <!DOCTYPE ...></html>
// span, dropping any surrounding explanation text.
func ExtractHTMLDocument(s string) string {
	cleaned := StripCodeFences(s)
	if idx := strings.Index(cleaned, "<!DOCTYPE"); idx > 0 {
		cleaned = cleaned[idx:]
	}
	if idx := strings.LastIndex(cleaned, "</html>"); idx != -1 {
		cleaned = cleaned[:idx+len("</html>")]
	}
	return strings.TrimSpace(cleaned)
}
