package domain

import "time"

// StatsRange is a resolved reporting window. From and To are in the
// requested location; Location names it for bucket formatting.
type StatsRange struct {
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Location string    `json:"tz"`
}

type RangeParams struct {
	From     string
	To       string
	TimeZone string
}

type SeriesPoint struct {
	Bucket string `bson:"bucket" json:"bucket"`
	Clicks int64  `bson:"clicks" json:"clicks"`
}

type Breakdown struct {
	Key   string `bson:"key" json:"key"`
	Count int64  `bson:"count" json:"count"`
}

type TopLink struct {
	Slug      string     `bson:"slug" json:"slug"`
	Name      string     `bson:"name" json:"name,omitempty"`
	URL       string     `bson:"url" json:"url,omitempty"`
	Clicks    int64      `bson:"clicks" json:"clicks"`
	LastClick *time.Time `bson:"last_click" json:"last_click,omitempty"`
}

type Overview struct {
	Range       StatsRange    `json:"range"`
	ClicksTotal int64         `json:"clicks_total"`
	UniqueIPs   int64         `json:"unique_ips"`
	LinksTotal  int64         `json:"links_total"`
	LinksActive int64         `json:"links_active"`
	TopLinks    []TopLink     `json:"top_links"`
	Series      []SeriesPoint `json:"series"`
}

type LinkStats struct {
	Range       StatsRange    `json:"range"`
	Slug        string        `json:"slug"`
	Link        *Link         `json:"link,omitempty"`
	ClicksTotal int64         `json:"clicks_total"`
	UniqueIPs   int64         `json:"unique_ips"`
	LastClick   *time.Time    `json:"last_click,omitempty"`
	Series      []SeriesPoint `json:"series"`
	Browsers    []Breakdown   `json:"browsers"`
	OS          []Breakdown   `json:"os"`
	DeviceTypes []Breakdown   `json:"device_type"`
}

// StatsQuery is what the store needs to aggregate access logs.
type StatsQuery struct {
	From     time.Time
	To       time.Time
	Location string
	GroupBy  string
	Top      int
}
