package handler

//go:generate go tool mockery

import (
	"context"

	"linkshortener/internal/domain"
)

type LinkService interface {
	Shorten(ctx context.Context, req domain.ShortenRequest) (*domain.ShortenResponse, error)
	Visit(ctx context.Context, slug string, v domain.Visit) (string, error)
}

type AdminService interface {
	ListLinks(ctx context.Context, filter domain.LinkFilter) (*domain.LinkPage, error)
	ExportLinks(ctx context.Context, filter domain.LinkFilter, fn func(*domain.Link) error) error
	GetLink(ctx context.Context, id string) (*domain.Link, error)
	UpdateLink(ctx context.Context, id string, update domain.LinkUpdate) (*domain.Link, error)
	DeleteLink(ctx context.Context, id string) error
	AccessLogs(ctx context.Context, slug string, limit int) ([]domain.AccessLog, error)
	ExportAccessLogs(ctx context.Context, slug string, fn func(*domain.AccessLog) error) error
	RegenerateQR(ctx context.Context, req domain.RegenerateQRRequest) (*domain.RegenerateQRResponse, error)
}

type StatsService interface {
	ResolveRange(p domain.RangeParams) (domain.StatsRange, error)
	Overview(ctx context.Context, rng domain.StatsRange, top int) (*domain.Overview, error)
	LinkStats(ctx context.Context, slug string, rng domain.StatsRange, groupBy string, top int) (*domain.LinkStats, error)
}

type AuthService interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Admin, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error)
}

type Validator interface {
	ValidateShorten(req domain.ShortenRequest) error
	ValidateUpdate(u domain.LinkUpdate) error
}
