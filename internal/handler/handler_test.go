package handler

import (
	"context"
	"testing"
	"time"

	"github.com/jdufort/amethystebot/internal/effect"
	"github.com/jdufort/amethystebot/internal/page"
	"github.com/jdufort/amethystebot/internal/post"
	"github.com/jdufort/amethystebot/internal/store"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	data        []byte
	contentType string
	params      effect.Params
}

func (g *fakeGenerator) Generate(_ context.Context, params effect.Params) ([]byte, string, error) {
	g.params = params
	return g.data, g.contentType, nil
}

type fakeUploader struct {
	uploads []store.UploadParams
}

func (u *fakeUploader) Upload(_ context.Context, params store.UploadParams) error {
	u.uploads = append(u.uploads, params)
	return nil
}

func (u *fakeUploader) names() []string {
	return lo.Map(u.uploads, func(p store.UploadParams, _ int) string { return p.Name })
}

type fakeInvalidator struct {
	paths []string
}

func (i *fakeInvalidator) Invalidate(_ context.Context, paths []string) error {
	i.paths = append(i.paths, paths...)
	return nil
}

type fakeBuilder struct{}

func (*fakeBuilder) Generate(context.Context) ([]byte, error) {
	return []byte("<rss/>"), nil
}

type fakePoster struct {
	posts []post.Params
}

func (p *fakePoster) Post(_ context.Context, params post.Params) error {
	p.posts = append(p.posts, params)
	return nil
}

func newTestHandler(generator *fakeGenerator) (*Handler, *fakeUploader, *fakeInvalidator, *fakePoster) {
	uploader := &fakeUploader{}
	invalidator := &fakeInvalidator{}
	poster := &fakePoster{}
	h := &Handler{
		generator:   generator,
		uploader:    uploader,
		invalidator: invalidator,
		templator:   &page.Templator{},
		feeder:      &fakeBuilder{},
		poster:      poster,
	}
	return h, uploader, invalidator, poster
}

func TestHandleBackdatedInput(t *testing.T) {
	generator := &fakeGenerator{data: []byte("png"), contentType: "image/png"}
	h, uploader, invalidator, poster := newTestHandler(generator)

	out, err := h.Handle(context.Background(), Input{
		Date:    "20240101",
		Effect:  "versus",
		Avatars: []string{"left.png", "right.png"},
		Style:   "red_and_blue",
	})
	require.NoError(t, err)
	assert.Equal(t, "20240101", out.Date)

	assert.Equal(t, effect.Params{
		Effect:  "versus",
		Avatars: []string{"left.png", "right.png"},
		Style:   "red_and_blue",
	}, generator.params)

	assert.Equal(t, []string{"20240101.png", "20240101.html", "feed.xml"}, uploader.names())
	assert.Equal(t, []byte("png"), uploader.uploads[0].Data)
	assert.Equal(t, "image/png", uploader.uploads[0].ContentType)
	assert.Equal(t, map[string]string{
		"date":    "20240101",
		"effect":  "versus",
		"style":   "red_and_blue",
		"avatars": "left.png right.png",
	}, uploader.uploads[0].Metadata)
	assert.Equal(t, []byte("<rss/>"), uploader.uploads[2].Data)

	assert.Equal(t, []string{"/20240101.png", "/20240101.html", "/feed.xml"}, invalidator.paths)
	assert.Empty(t, poster.posts, "backdated images are not posted")
}

func TestHandleTodayRefreshesLatestAndPosts(t *testing.T) {
	generator := &fakeGenerator{data: []byte("gif"), contentType: "image/gif"}
	h, uploader, invalidator, poster := newTestHandler(generator)

	out, err := h.Handle(context.Background(), Input{
		Effect:  "triggered",
		Avatars: []string{"a.png"},
	})
	require.NoError(t, err)

	today := time.Now().UTC().Format("20060102")
	assert.Equal(t, today, out.Date)

	assert.Equal(t, []string{
		today + ".gif", today + ".html",
		"latest.gif", "latest.html",
		"feed.xml",
	}, uploader.names())

	assert.Contains(t, invalidator.paths, "/latest.gif")
	assert.Contains(t, invalidator.paths, "/latest.html")
	assert.Contains(t, invalidator.paths, "/feed.xml")

	require.Len(t, poster.posts, 1)
	assert.Equal(t, post.Params{Date: today, Effect: "triggered"}, poster.posts[0])
}
