package domain

import "time"

// Link is a shortened destination. Links are never removed from the store;
// deletion flips Deleted and moves the record to a versioned slug.
type Link struct {
	ID           string     `bson:"_id" json:"id"`
	Slug         string     `bson:"slug" json:"slug"`
	OriginalSlug string     `bson:"original_slug,omitempty" json:"original_slug,omitempty"`
	Name         string     `bson:"name" json:"name"`
	URL          string     `bson:"url" json:"url"`
	CallbackURL  string     `bson:"callback_url,omitempty" json:"callback_url,omitempty"`
	Notes        string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Tags         []string   `bson:"tags" json:"tags"`
	Active       bool       `bson:"is_active" json:"is_active"`
	Deleted      bool       `bson:"deleted" json:"deleted"`
	ClickCount   int64      `bson:"click_count" json:"click_count"`
	QRPNG        string     `bson:"qr_png,omitempty" json:"qr_png,omitempty"`
	QRSVG        string     `bson:"qr_svg,omitempty" json:"qr_svg,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	DeletedAt    *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

// Redirect is the subset of a Link needed to serve a visit.
type Redirect struct {
	LinkID      string
	Slug        string
	URL         string
	CallbackURL string
	Active      bool
}

func (l *Link) Redirect() Redirect {
	return Redirect{
		LinkID:      l.ID,
		Slug:        l.Slug,
		URL:         l.URL,
		CallbackURL: l.CallbackURL,
		Active:      l.Active,
	}
}

type ShortenRequest struct {
	Name        string `json:"name" form:"name"`
	URL         string `json:"url" form:"url"`
	CallbackURL string `json:"callback_url" form:"callback_url"`
	Slug        string `json:"slug" form:"slug"`
}

type ShortenResponse struct {
	Slug     string `json:"slug"`
	ShortURL string `json:"short_url"`
	QRPNG    string `json:"qr_png"`
	QRSVG    string `json:"qr_svg"`
}

// LinkUpdate holds the mutable fields of a Link. Nil fields are left untouched.
type LinkUpdate struct {
	Name        *string   `json:"name"`
	URL         *string   `json:"url"`
	CallbackURL *string   `json:"callback_url"`
	Notes       *string   `json:"notes"`
	Tags        *[]string `json:"tags"`
	Active      *bool     `json:"is_active"`
}

func (u LinkUpdate) Empty() bool {
	return u.Name == nil && u.URL == nil && u.CallbackURL == nil &&
		u.Notes == nil && u.Tags == nil && u.Active == nil
}

type LinkFilter struct {
	Slug           string
	Name           string
	URL            string
	Tag            string
	Active         *bool
	IncludeDeleted bool
	HasQRCodes     bool
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	Page           int
	PageSize       int
}

type LinkPage struct {
	Data     []Link `json:"data"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int64  `json:"total"`
}

type QRResult struct {
	Slug   string `json:"slug"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
	QRPNG  string `json:"qr_png,omitempty"`
	QRSVG  string `json:"qr_svg,omitempty"`
}

type RegenerateQRRequest struct {
	Slug  string   `json:"slug"`
	Slugs []string `json:"slugs"`
	Force *bool    `json:"force"`
}

type RegenerateQRResponse struct {
	Updated int        `json:"updated"`
	Results []QRResult `json:"results"`
}
