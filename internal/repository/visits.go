package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linkshortener/internal/domain"
)

// RecordVisit stores one access log and bumps the click counter of its link.
// A failed counter update after the log is stored returns ErrClickCount.
func (r *Repository) RecordVisit(ctx context.Context, log *domain.AccessLog) error {
	if _, err := r.accessLogs.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to insert access log: %w", wrapErr(err))
	}

	_, err := r.links.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: log.LinkID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "click_count", Value: int64(1)}}}},
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrClickCount, wrapErr(err))
	}
	return nil
}

// RenameSlug moves access logs recorded at or before the cutoff from one slug
// to another and returns how many were moved.
func (r *Repository) RenameSlug(ctx context.Context, from, to string, before time.Time) (int64, error) {
	res, err := r.accessLogs.UpdateMany(ctx,
		bson.D{
			{Key: "slug", Value: from},
			{Key: "ts", Value: bson.D{{Key: "$lte", Value: before}}},
		},
		bson.D{{Key: "$set", Value: bson.D{{Key: "slug", Value: to}}}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to rename access logs: %w", wrapErr(err))
	}
	return res.ModifiedCount, nil
}

// ListAccessLogs returns the most recent access logs for slug, newest first.
func (r *Repository) ListAccessLogs(ctx context.Context, slug string, limit int) ([]domain.AccessLog, error) {
	cursor, err := r.accessLogs.Find(ctx,
		bson.D{{Key: "slug", Value: slug}},
		options.Find().SetSort(bson.D{{Key: "ts", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", wrapErr(err))
	}

	logs := []domain.AccessLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode access logs: %w", wrapErr(err))
	}
	return logs, nil
}

// EachAccessLog streams every access log for slug, newest first.
func (r *Repository) EachAccessLog(ctx context.Context, slug string, fn func(*domain.AccessLog) error) error {
	cursor, err := r.accessLogs.Find(ctx,
		bson.D{{Key: "slug", Value: slug}},
		options.Find().SetSort(bson.D{{Key: "ts", Value: -1}}),
	)
	if err != nil {
		return fmt.Errorf("failed to query access logs: %w", wrapErr(err))
	}
	defer func() { _ = cursor.Close(context.Background()) }()

	for cursor.Next(ctx) {
		var log domain.AccessLog
		if err := cursor.Decode(&log); err != nil {
			return fmt.Errorf("failed to decode access log: %w", err)
		}
		if err := fn(&log); err != nil {
			return err
		}
	}
	return wrapErr(cursor.Err())
}

// LastAccess returns the timestamp of the newest access log for slug.
func (r *Repository) LastAccess(ctx context.Context, slug string) (time.Time, bool, error) {
	var log struct {
		Timestamp time.Time `bson:"ts"`
	}
	err := r.accessLogs.FindOne(ctx,
		bson.D{{Key: "slug", Value: slug}},
		options.FindOne().
			SetSort(bson.D{{Key: "ts", Value: -1}}).
			SetProjection(bson.D{{Key: "ts", Value: 1}}),
	).Decode(&log)
	if err != nil {
		err = wrapErr(err)
		if isNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to find last access: %w", err)
	}
	return log.Timestamp, true, nil
}
