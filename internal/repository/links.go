package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linkshortener/internal/domain"
)

// NextID atomically increments the link sequence and returns the new value.
func (r *Repository) NextID(ctx context.Context) (uint64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: linkCounterID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", wrapErr(err))
	}
	return uint64(counter.Seq), nil
}

func (r *Repository) CreateLink(ctx context.Context, link *domain.Link) error {
	if link.Tags == nil {
		link.Tags = []string{}
	}
	if _, err := r.links.InsertOne(ctx, link); err != nil {
		return fmt.Errorf("failed to insert link: %w", wrapErr(err))
	}
	return nil
}

func (r *Repository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Link, error) {
	var link domain.Link
	err := r.links.FindOne(ctx, bson.D{
		{Key: "slug", Value: slug},
		{Key: "deleted", Value: false},
	}).Decode(&link)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &link, nil
}

func (r *Repository) FindLinkByID(ctx context.Context, id string) (*domain.Link, error) {
	var link domain.Link
	err := r.links.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&link)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &link, nil
}

func (r *Repository) UpdateLink(ctx context.Context, id string, update domain.LinkUpdate, now time.Time) (*domain.Link, error) {
	set := bson.D{{Key: "updated_at", Value: now}}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.URL != nil {
		set = append(set, bson.E{Key: "url", Value: *update.URL})
	}
	if update.CallbackURL != nil {
		set = append(set, bson.E{Key: "callback_url", Value: *update.CallbackURL})
	}
	if update.Notes != nil {
		set = append(set, bson.E{Key: "notes", Value: *update.Notes})
	}
	if update.Tags != nil {
		tags := *update.Tags
		if tags == nil {
			tags = []string{}
		}
		set = append(set, bson.E{Key: "tags", Value: tags})
	}
	if update.Active != nil {
		set = append(set, bson.E{Key: "is_active", Value: *update.Active})
	}

	var link domain.Link
	err := r.links.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "deleted", Value: false}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&link)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &link, nil
}

// SoftDeleteLink marks a live link deleted and moves it to versionedSlug,
// which releases slug for new links.
func (r *Repository) SoftDeleteLink(ctx context.Context, id, slug, versionedSlug string, now time.Time) error {
	res, err := r.links.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: id},
			{Key: "slug", Value: slug},
			{Key: "deleted", Value: false},
		},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "deleted", Value: true},
			{Key: "is_active", Value: false},
			{Key: "slug", Value: versionedSlug},
			{Key: "original_slug", Value: slug},
			{Key: "deleted_at", Value: now},
			{Key: "updated_at", Value: now},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to soft delete link: %w", wrapErr(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetQRCodes(ctx context.Context, id, png, svg string, now time.Time) error {
	res, err := r.links.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "qr_png", Value: png},
			{Key: "qr_svg", Value: svg},
			{Key: "updated_at", Value: now},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set qr codes: %w", wrapErr(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearQRCodes removes the QR references of a link and optionally disables it.
func (r *Repository) ClearQRCodes(ctx context.Context, id string, disable bool, now time.Time) error {
	set := bson.D{{Key: "updated_at", Value: now}}
	if disable {
		set = append(set, bson.E{Key: "is_active", Value: false})
	}
	_, err := r.links.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$set", Value: set},
			{Key: "$unset", Value: bson.D{{Key: "qr_png", Value: ""}, {Key: "qr_svg", Value: ""}}},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to clear qr codes: %w", wrapErr(err))
	}
	return nil
}

func (r *Repository) ListLinks(ctx context.Context, filter domain.LinkFilter) ([]domain.Link, int64, error) {
	query := LinkQuery(filter)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.PageSize > 0 {
		page := max(filter.Page, 1)
		opts.SetSkip(int64((page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := r.links.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list links: %w", wrapErr(err))
	}

	links := []domain.Link{}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, 0, fmt.Errorf("failed to decode links: %w", wrapErr(err))
	}

	total, err := r.links.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count links: %w", wrapErr(err))
	}

	return links, total, nil
}

// EachLink streams every link matching filter, newest first, ignoring paging.
func (r *Repository) EachLink(ctx context.Context, filter domain.LinkFilter, fn func(*domain.Link) error) error {
	cursor, err := r.links.Find(ctx, LinkQuery(filter),
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return fmt.Errorf("failed to query links: %w", wrapErr(err))
	}
	defer func() { _ = cursor.Close(context.Background()) }()

	for cursor.Next(ctx) {
		var link domain.Link
		if err := cursor.Decode(&link); err != nil {
			return fmt.Errorf("failed to decode link: %w", err)
		}
		if err := fn(&link); err != nil {
			return err
		}
	}
	return wrapErr(cursor.Err())
}

// LinkQuery builds the Mongo filter for a LinkFilter. Text filters are
// case-insensitive substring matches with the input regex-escaped.
func LinkQuery(f domain.LinkFilter) bson.D {
	query := bson.D{}

	if !f.IncludeDeleted {
		query = append(query, bson.E{Key: "deleted", Value: false})
	}
	if f.Slug != "" {
		query = append(query, bson.E{Key: "slug", Value: containsRegex(f.Slug)})
	}
	if f.Name != "" {
		query = append(query, bson.E{Key: "name", Value: containsRegex(f.Name)})
	}
	if f.URL != "" {
		query = append(query, bson.E{Key: "url", Value: containsRegex(f.URL)})
	}
	if f.Tag != "" {
		query = append(query, bson.E{Key: "tags", Value: f.Tag})
	}
	if f.Active != nil {
		query = append(query, bson.E{Key: "is_active", Value: *f.Active})
	}
	if f.HasQRCodes {
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "qr_png", Value: bson.D{{Key: "$exists", Value: true}, {Key: "$ne", Value: ""}}}},
			bson.D{{Key: "qr_svg", Value: bson.D{{Key: "$exists", Value: true}, {Key: "$ne", Value: ""}}}},
		}})
	}
	if f.CreatedFrom != nil || f.CreatedTo != nil {
		created := bson.D{}
		if f.CreatedFrom != nil {
			created = append(created, bson.E{Key: "$gte", Value: *f.CreatedFrom})
		}
		if f.CreatedTo != nil {
			created = append(created, bson.E{Key: "$lte", Value: *f.CreatedTo})
		}
		query = append(query, bson.E{Key: "created_at", Value: created})
	}

	return query
}

func containsRegex(s string) bson.D {
	return bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(s)},
		{Key: "$options", Value: "i"},
	}
}
