package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"linkshortener/internal/domain"
)

const (
	GroupByDay  = "day"
	GroupByHour = "hour"
)

type statsTotals struct {
	Clicks    int64      `bson:"clicks"`
	UniqueIPs int64      `bson:"unique_ips"`
	LastClick *time.Time `bson:"last_click"`
}

type statsFacets struct {
	Totals      []statsTotals        `bson:"totals"`
	Series      []domain.SeriesPoint `bson:"series"`
	Top         []domain.TopLink     `bson:"top"`
	Browsers    []domain.Breakdown   `bson:"browsers"`
	OS          []domain.Breakdown   `bson:"os"`
	DeviceTypes []domain.Breakdown   `bson:"device_types"`
}

func (f *statsFacets) totals() statsTotals {
	if len(f.Totals) == 0 {
		return statsTotals{}
	}
	return f.Totals[0]
}

// Overview aggregates clicks across every slug in the query window and counts
// live links.
func (r *Repository) Overview(ctx context.Context, q domain.StatsQuery) (*domain.Overview, error) {
	facets, err := r.aggregateLogs(ctx, rangeMatch(q), bson.D{
		{Key: "totals", Value: totalsFacet()},
		{Key: "series", Value: seriesFacet(q)},
		{Key: "top", Value: topLinksFacet(q.Top)},
	})
	if err != nil {
		return nil, err
	}

	linksTotal, err := r.links.CountDocuments(ctx, bson.D{{Key: "deleted", Value: false}})
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", wrapErr(err))
	}
	linksActive, err := r.links.CountDocuments(ctx, bson.D{
		{Key: "deleted", Value: false},
		{Key: "is_active", Value: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count active links: %w", wrapErr(err))
	}

	totals := facets.totals()
	return &domain.Overview{
		ClicksTotal: totals.Clicks,
		UniqueIPs:   totals.UniqueIPs,
		LinksTotal:  linksTotal,
		LinksActive: linksActive,
		TopLinks:    nonNil(facets.Top),
		Series:      nonNil(facets.Series),
	}, nil
}

// LinkStats aggregates the access logs of a single slug in the query window.
func (r *Repository) LinkStats(ctx context.Context, slug string, q domain.StatsQuery) (*domain.LinkStats, error) {
	match := append(rangeMatch(q), bson.E{Key: "slug", Value: slug})

	facets, err := r.aggregateLogs(ctx, match, bson.D{
		{Key: "totals", Value: totalsFacet()},
		{Key: "series", Value: seriesFacet(q)},
		{Key: "browsers", Value: breakdownFacet(bson.D{{Key: "$ifNull", Value: bson.A{"$browser", "unknown"}}}, q.Top)},
		{Key: "os", Value: breakdownFacet(bson.D{{Key: "$ifNull", Value: bson.A{"$os", "unknown"}}}, q.Top)},
		{Key: "device_types", Value: breakdownFacet(deviceTypeExpr(), q.Top)},
	})
	if err != nil {
		return nil, err
	}

	totals := facets.totals()
	return &domain.LinkStats{
		Slug:        slug,
		ClicksTotal: totals.Clicks,
		UniqueIPs:   totals.UniqueIPs,
		LastClick:   totals.LastClick,
		Series:      nonNil(facets.Series),
		Browsers:    nonNil(facets.Browsers),
		OS:          nonNil(facets.OS),
		DeviceTypes: nonNil(facets.DeviceTypes),
	}, nil
}

func (r *Repository) aggregateLogs(ctx context.Context, match bson.D, facet bson.D) (*statsFacets, error) {
	cursor, err := r.accessLogs.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: facet}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate access logs: %w", wrapErr(err))
	}
	defer func() { _ = cursor.Close(context.Background()) }()

	var facets statsFacets
	if cursor.Next(ctx) {
		if err := cursor.Decode(&facets); err != nil {
			return nil, fmt.Errorf("failed to decode aggregation: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return &facets, nil
}

func rangeMatch(q domain.StatsQuery) bson.D {
	return bson.D{{Key: "ts", Value: bson.D{
		{Key: "$gte", Value: q.From},
		{Key: "$lte", Value: q.To},
	}}}
}

func totalsFacet() bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "ips", Value: bson.D{{Key: "$addToSet", Value: "$ip"}}},
			{Key: "last_click", Value: bson.D{{Key: "$max", Value: "$ts"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "clicks", Value: 1},
			{Key: "last_click", Value: 1},
			{Key: "unique_ips", Value: bson.D{{Key: "$size", Value: "$ips"}}},
		}}},
	}
}

// BucketFormat returns the $dateToString layout for a series granularity.
func BucketFormat(groupBy string) string {
	if groupBy == GroupByHour {
		return "%Y-%m-%dT%H:00"
	}
	return "%Y-%m-%d"
}

func seriesFacet(q domain.StatsQuery) bson.A {
	location := q.Location
	if location == "" {
		location = "UTC"
	}
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: BucketFormat(q.GroupBy)},
				{Key: "date", Value: "$ts"},
				{Key: "timezone", Value: location},
			}}}},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "bucket", Value: "$_id"},
			{Key: "clicks", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "bucket", Value: 1}}}},
	}
}

func topLinksFacet(limit int) bson.A {
	if limit <= 0 {
		limit = 10
	}
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$slug"},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "last_click", Value: bson.D{{Key: "$max", Value: "$ts"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "clicks", Value: -1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: linksCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "slug"},
			{Key: "as", Value: "link"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "slug", Value: "$_id"},
			{Key: "clicks", Value: 1},
			{Key: "last_click", Value: 1},
			{Key: "name", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$link.name", 0}}}},
			{Key: "url", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$link.url", 0}}}},
		}}},
	}
}

// breakdownFacet counts logs per key, largest first, keeping at most limit keys.
func breakdownFacet(key any, limit int) bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: key},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "key", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

// deviceTypeExpr mirrors domain.ClientInfo.DeviceType.
func deviceTypeExpr() bson.D {
	branch := func(field, value string) bson.D {
		return bson.D{
			{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$" + field, true}}}},
			{Key: "then", Value: value},
		}
	}
	return bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: bson.A{
			branch("is_bot", "bot"),
			branch("is_mobile", "mobile"),
			branch("is_tablet", "tablet"),
			branch("is_pc", "pc"),
		}},
		{Key: "default", Value: "other"},
	}}}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
