package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"linkshortener/internal/config"
	"linkshortener/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

// Slugs that would shadow a top-level route.
var reservedSlugs = map[string]bool{
	"admin":   true,
	"auth":    true,
	"static":  true,
	"health":  true,
	"shorten": true,
	"debug":   true,
}

type Validator struct {
	maxURLLength    int
	maxNameLength   int
	allowPrivateIPs bool
}

func New(cfg *config.ValidationConfig) *Validator {
	return &Validator{
		maxURLLength:    cfg.MaxURLLength,
		maxNameLength:   cfg.MaxNameLength,
		allowPrivateIPs: cfg.AllowPrivateIPs,
	}
}

func (v *Validator) ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > v.maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (v *Validator) ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	if reservedSlugs[strings.ToLower(slug)] {
		return ErrReservedSlug
	}
	return nil
}

// ValidateCallbackURL accepts an empty value, which means no callback.
func (v *Validator) ValidateCallbackURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return nil
	}
	return v.ValidateURL(rawURL)
}

func (v *Validator) ValidateShorten(req domain.ShortenRequest) error {
	if err := v.ValidateName(req.Name); err != nil {
		return fieldErr("name", err)
	}
	if err := v.ValidateURL(req.URL); err != nil {
		return fieldErr("url", err)
	}
	if err := v.ValidateCallbackURL(req.CallbackURL); err != nil {
		return fieldErr("callback_url", err)
	}
	if req.Slug != "" {
		if err := v.ValidateSlug(req.Slug); err != nil {
			return fieldErr("slug", err)
		}
	}
	return nil
}

func (v *Validator) ValidateUpdate(u domain.LinkUpdate) error {
	if u.Empty() {
		return ErrEmptyUpdate
	}
	if u.Name != nil {
		if err := v.ValidateName(*u.Name); err != nil {
			return fieldErr("name", err)
		}
	}
	if u.URL != nil {
		if err := v.ValidateURL(*u.URL); err != nil {
			return fieldErr("url", err)
		}
	}
	if u.CallbackURL != nil {
		if err := v.ValidateCallbackURL(*u.CallbackURL); err != nil {
			return fieldErr("callback_url", err)
		}
	}
	return nil
}
