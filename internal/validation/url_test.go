package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"linkshortener/internal/config"
	"linkshortener/internal/validation"
)

func newValidator(allowPrivateIPs bool) *validation.Validator {
	return validation.New(&config.ValidationConfig{
		MaxURLLength:    100,
		MaxNameLength:   20,
		AllowPrivateIPs: allowPrivateIPs,
	})
}

func TestValidateURL(t *testing.T) {
	v := newValidator(false)

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"valid http", "http://example.com", nil},
		{"valid https", "https://example.com", nil},
		{"valid with query", "https://example.com/path?q=1", nil},
		{"valid with port", "https://example.com:8080/path", nil},

		{"empty string", "", validation.ErrEmptyURL},
		{"whitespace only", "   ", validation.ErrEmptyURL},

		{"no scheme", "example.com", validation.ErrInvalidURLFormat},
		{"no host", "http://", validation.ErrInvalidURLFormat},
		{"ftp scheme", "ftp://example.com", validation.ErrInvalidURLFormat},

		{"javascript protocol", "javascript:alert(1)", validation.ErrUnsafeProtocol},
		{"data protocol", "data:text/html,<script>", validation.ErrUnsafeProtocol},
		{"file protocol", "file:///etc/passwd", validation.ErrUnsafeProtocol},

		{"private ip", "http://10.0.0.1/", validation.ErrPrivateIPNotAllowed},
		{"too long", "https://example.com/" + strings.Repeat("a", 100), validation.ErrURLTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, v.ValidateURL(tt.url))
		})
	}
}

func TestValidateURL_AllowPrivateIPs(t *testing.T) {
	v := newValidator(true)

	for _, u := range []string{"http://127.0.0.1/", "http://10.0.0.1/", "http://[::1]/"} {
		assert.NoError(t, v.ValidateURL(u), u)
	}
}
