package domain

import "time"

// ClientInfo is the parsed form of a User-Agent header.
type ClientInfo struct {
	Browser        string `bson:"browser" json:"browser"`
	BrowserVersion string `bson:"browser_version" json:"browser_version"`
	OS             string `bson:"os" json:"os"`
	OSVersion      string `bson:"os_version" json:"os_version"`
	Device         string `bson:"device" json:"device"`
	IsMobile       bool   `bson:"is_mobile" json:"is_mobile"`
	IsTablet       bool   `bson:"is_tablet" json:"is_tablet"`
	IsPC           bool   `bson:"is_pc" json:"is_pc"`
	IsBot          bool   `bson:"is_bot" json:"is_bot"`
}

func (c ClientInfo) DeviceType() string {
	switch {
	case c.IsBot:
		return "bot"
	case c.IsMobile:
		return "mobile"
	case c.IsTablet:
		return "tablet"
	case c.IsPC:
		return "pc"
	default:
		return "other"
	}
}

type AccessLog struct {
	ID         string    `bson:"_id" json:"id"`
	LinkID     string    `bson:"link_id" json:"link_id"`
	Slug       string    `bson:"slug" json:"slug"`
	IP         string    `bson:"ip" json:"ip"`
	Timestamp  time.Time `bson:"ts" json:"timestamp"`
	UserAgent  string    `bson:"user_agent" json:"user_agent"`
	Referer    string    `bson:"referer,omitempty" json:"referer,omitempty"`
	ClientInfo `bson:",inline"`
}

// Visit carries the request metadata recorded for a redirect.
type Visit struct {
	IP        string
	UserAgent string
	Referer   string
}

const EventLinkVisited = "link.visited"

type CallbackEvent struct {
	ID          string    `json:"id"`
	Event       string    `json:"event"`
	Slug        string    `json:"slug"`
	URL         string    `json:"url"`
	IP          string    `json:"ip"`
	UserAgent   string    `json:"user_agent"`
	Timestamp   time.Time `json:"timestamp"`
	CallbackURL string    `json:"-"`
}
