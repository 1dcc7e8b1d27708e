package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
	"linkshortener/internal/service"
)

func TestVersionedSlug(t *testing.T) {
	ts := time.Date(2024, 5, 2, 10, 30, 5, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, "docs~deleted-20240502T083005Z", service.VersionedSlug("docs", ts))
}

func TestListLinks_ClampsPaging(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().ListLinks(mock.Anything, domain.LinkFilter{Page: 1, PageSize: service.MaxPageSize}).
		Return([]domain.Link{{Slug: "a"}}, 1, nil)

	page, err := svc.ListLinks(context.Background(), domain.LinkFilter{Page: -3, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, service.MaxPageSize, page.PageSize)
	assert.EqualValues(t, 1, page.Total)
}

func TestListLinks_CapsPage(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().ListLinks(mock.Anything, domain.LinkFilter{Page: service.MaxPage, PageSize: service.DefaultPageSize}).
		Return(nil, 0, nil)

	page, err := svc.ListLinks(context.Background(), domain.LinkFilter{Page: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, service.MaxPage, page.Page)
}

func TestExportLinks_IgnoresPaging(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().EachLink(mock.Anything, domain.LinkFilter{Tag: "eng"}, mock.Anything).Return(nil)

	err := svc.ExportLinks(context.Background(), domain.LinkFilter{Tag: "eng", Page: 3, PageSize: 20},
		func(*domain.Link) error { return nil })
	require.NoError(t, err)
}

func TestGetLink_NotFound(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().FindLinkByID(mock.Anything, "x").Return(nil, repository.ErrNotFound)

	_, err := svc.GetLink(context.Background(), "x")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateLink_NormalizesAndEvicts(t *testing.T) {
	svc, m := newLinkService(t)

	name := "  Handbook  "
	tags := []string{" eng ", "", "eng", "wiki"}
	m.links.EXPECT().UpdateLink(mock.Anything, "l1", mock.MatchedBy(func(u domain.LinkUpdate) bool {
		return *u.Name == "Handbook" && assert.ObjectsAreEqual([]string{"eng", "wiki"}, *u.Tags)
	}), fixedNow).Return(&domain.Link{ID: "l1", Slug: "docs"}, nil)
	m.cache.EXPECT().Delete("docs").Return()

	link, err := svc.UpdateLink(context.Background(), "l1", domain.LinkUpdate{Name: &name, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "docs", link.Slug)
}

func TestUpdateLink_NotFound(t *testing.T) {
	svc, m := newLinkService(t)

	active := false
	m.links.EXPECT().UpdateLink(mock.Anything, "l1", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateLink(context.Background(), "l1", domain.LinkUpdate{Active: &active})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteLink(t *testing.T) {
	svc, m := newLinkService(t)

	versioned := "docs~deleted-20240502T083000Z"
	m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{ID: "l1", Slug: "docs", Active: true}, nil)
	m.links.EXPECT().SoftDeleteLink(mock.Anything, "l1", "docs", versioned, fixedNow).Return(nil)
	m.cache.EXPECT().Delete("docs").Return()
	m.visits.EXPECT().RenameSlug(mock.Anything, "docs", versioned, fixedNow).Return(12, nil)
	m.qr.EXPECT().Remove("docs").Return(nil)

	require.NoError(t, svc.DeleteLink(context.Background(), "l1"))
}

func TestDeleteLink_QRRemovalFailureIsNotFatal(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{ID: "l1", Slug: "docs"}, nil)
	m.links.EXPECT().SoftDeleteLink(mock.Anything, "l1", "docs", mock.Anything, fixedNow).Return(nil)
	m.cache.EXPECT().Delete("docs").Return()
	m.visits.EXPECT().RenameSlug(mock.Anything, "docs", mock.Anything, fixedNow).Return(0, nil)
	m.qr.EXPECT().Remove("docs").Return(errors.New("permission denied"))

	assert.NoError(t, svc.DeleteLink(context.Background(), "l1"))
}

func TestDeleteLink_AlreadyDeleted(t *testing.T) {
	deletedAt := fixedNow.Add(-time.Hour)

	t.Run("without original slug", func(t *testing.T) {
		svc, m := newLinkService(t)
		m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{ID: "l1", Slug: "docs~deleted-x", Deleted: true}, nil)

		assert.ErrorIs(t, svc.DeleteLink(context.Background(), "l1"), service.ErrNotFound)
	})

	t.Run("logs already moved", func(t *testing.T) {
		svc, m := newLinkService(t)
		m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{
			ID: "l1", Slug: "docs~deleted-x", OriginalSlug: "docs", Deleted: true, DeletedAt: &deletedAt,
		}, nil)
		m.visits.EXPECT().RenameSlug(mock.Anything, "docs", "docs~deleted-x", deletedAt).Return(0, nil)

		assert.ErrorIs(t, svc.DeleteLink(context.Background(), "l1"), service.ErrNotFound)
	})
}

func TestDeleteLink_RetryAfterLogMoveFailure(t *testing.T) {
	svc, m := newLinkService(t)

	versioned := "docs~deleted-20240502T083000Z"
	m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{ID: "l1", Slug: "docs", Active: true}, nil).Once()
	m.links.EXPECT().SoftDeleteLink(mock.Anything, "l1", "docs", versioned, fixedNow).Return(nil).Once()
	m.cache.EXPECT().Delete("docs").Return().Once()
	m.qr.EXPECT().Remove("docs").Return(nil).Once()
	m.visits.EXPECT().RenameSlug(mock.Anything, "docs", versioned, fixedNow).Return(0, repository.ErrUnavailable).Once()

	err := svc.DeleteLink(context.Background(), "l1")
	require.ErrorIs(t, err, repository.ErrUnavailable)

	deletedAt := fixedNow
	m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{
		ID: "l1", Slug: versioned, OriginalSlug: "docs", Deleted: true, DeletedAt: &deletedAt,
	}, nil).Once()
	m.visits.EXPECT().RenameSlug(mock.Anything, "docs", versioned, fixedNow).Return(12, nil).Once()

	require.NoError(t, svc.DeleteLink(context.Background(), "l1"))
}

func TestDeleteLink_ConcurrentDelete(t *testing.T) {
	svc, m := newLinkService(t)

	m.links.EXPECT().FindLinkByID(mock.Anything, "l1").Return(&domain.Link{ID: "l1", Slug: "docs"}, nil)
	m.links.EXPECT().SoftDeleteLink(mock.Anything, "l1", "docs", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteLink(context.Background(), "l1"), service.ErrNotFound)
}

func TestAccessLogs(t *testing.T) {
	t.Run("clamps limit", func(t *testing.T) {
		svc, m := newLinkService(t)
		m.visits.EXPECT().ListAccessLogs(mock.Anything, "docs", service.MaxLogLimit).
			Return([]domain.AccessLog{{ID: "a"}}, nil)

		logs, err := svc.AccessLogs(context.Background(), "docs", 5000)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("none recorded", func(t *testing.T) {
		svc, m := newLinkService(t)
		m.visits.EXPECT().ListAccessLogs(mock.Anything, "docs", service.DefaultLogLimit).Return(nil, nil)

		_, err := svc.AccessLogs(context.Background(), "docs", 0)
		assert.ErrorIs(t, err, service.ErrNoAccessLogs)
	})
}

func TestExportAccessLogs_NoLogs(t *testing.T) {
	svc, m := newLinkService(t)

	m.visits.EXPECT().ListAccessLogs(mock.Anything, "docs", 1).Return([]domain.AccessLog{}, nil)

	err := svc.ExportAccessLogs(context.Background(), "docs", func(*domain.AccessLog) error { return nil })
	assert.ErrorIs(t, err, service.ErrNoAccessLogs)
	m.visits.AssertNotCalled(t, "EachAccessLog", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegenerateQR_NoSlugs(t *testing.T) {
	svc, _ := newLinkService(t)

	_, err := svc.RegenerateQR(context.Background(), domain.RegenerateQRRequest{Slugs: []string{" ", ""}})
	assert.ErrorIs(t, err, service.ErrNoSlugs)
}

func TestRegenerateQR_Force(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(&domain.Link{ID: "l1", Slug: "docs"}, nil).Once()
	m.links.EXPECT().FindActiveBySlug(mock.Anything, "gone").Return(nil, repository.ErrNotFound).Once()
	m.links.EXPECT().FindActiveBySlug(mock.Anything, "broken").Return(&domain.Link{ID: "l3", Slug: "broken"}, nil).Once()
	m.qr.EXPECT().Write("docs", "http://go.test/docs").Return(nil)
	m.qr.EXPECT().Write("broken", "http://go.test/broken").Return(errors.New("disk full"))
	m.links.EXPECT().SetQRCodes(mock.Anything, "l1",
		"http://go.test/static/docs.png", "http://go.test/static/docs.svg", fixedNow).Return(nil)

	resp, err := svc.RegenerateQR(context.Background(), domain.RegenerateQRRequest{
		Slug:  "docs",
		Slugs: []string{"gone", "docs", "broken"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Updated)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, domain.QRResult{
		Slug: "docs", OK: true, QRPNG: "http://go.test/static/docs.png", QRSVG: "http://go.test/static/docs.svg",
	}, resp.Results[0])
	assert.Equal(t, domain.QRResult{Slug: "gone", Reason: "not_found"}, resp.Results[1])
	assert.Equal(t, domain.QRResult{Slug: "broken", Reason: "write_failed"}, resp.Results[2])
}

func TestRegenerateQR_SkipsExistingWithoutForce(t *testing.T) {
	svc, m := newLinkService(t)
	expectRefs(m)

	force := false
	m.links.EXPECT().FindActiveBySlug(mock.Anything, "docs").Return(&domain.Link{ID: "l1", Slug: "docs"}, nil)
	m.qr.EXPECT().Missing("docs").Return(false)

	resp, err := svc.RegenerateQR(context.Background(), domain.RegenerateQRRequest{Slug: "docs", Force: &force})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Updated)
	assert.Equal(t, "exists", resp.Results[0].Reason)
	assert.True(t, resp.Results[0].OK)
}
