package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"linkshortener/internal/domain"
)

type LinkStore interface {
	NextID(ctx context.Context) (uint64, error)
	CreateLink(ctx context.Context, link *domain.Link) error
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Link, error)
	FindLinkByID(ctx context.Context, id string) (*domain.Link, error)
	UpdateLink(ctx context.Context, id string, update domain.LinkUpdate, now time.Time) (*domain.Link, error)
	SoftDeleteLink(ctx context.Context, id, slug, versionedSlug string, now time.Time) error
	ListLinks(ctx context.Context, filter domain.LinkFilter) ([]domain.Link, int64, error)
	EachLink(ctx context.Context, filter domain.LinkFilter, fn func(*domain.Link) error) error
	SetQRCodes(ctx context.Context, id, png, svg string, now time.Time) error
	ClearQRCodes(ctx context.Context, id string, disable bool, now time.Time) error
}

type VisitStore interface {
	RecordVisit(ctx context.Context, log *domain.AccessLog) error
	RenameSlug(ctx context.Context, from, to string, before time.Time) (int64, error)
	ListAccessLogs(ctx context.Context, slug string, limit int) ([]domain.AccessLog, error)
	EachAccessLog(ctx context.Context, slug string, fn func(*domain.AccessLog) error) error
	LastAccess(ctx context.Context, slug string) (time.Time, bool, error)
}

type StatsStore interface {
	Overview(ctx context.Context, q domain.StatsQuery) (*domain.Overview, error)
	LinkStats(ctx context.Context, slug string, q domain.StatsQuery) (*domain.LinkStats, error)
}

type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *domain.Admin) error
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

type SlugGenerator interface {
	Generate(id uint64) (string, error)
}

type QRStore interface {
	Refs(slug string) (png, svg string)
	Write(slug, content string) error
	Remove(slug string) error
	Missing(slug string) bool
}

type Cache interface {
	Get(slug string) (domain.Redirect, bool)
	Set(r domain.Redirect)
	Delete(slug string)
}

type Notifier interface {
	Notify(ev domain.CallbackEvent) bool
}

type AgentParser interface {
	Parse(raw string) domain.ClientInfo
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
	TTL() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
