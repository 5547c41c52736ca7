package handler

import (
	"context"
	"strings"
	"time"

	"github.com/jdufort/amethystebot/internal/effect"
	"github.com/jdufort/amethystebot/internal/feed"
	"github.com/jdufort/amethystebot/internal/log"
	"github.com/jdufort/amethystebot/internal/page"
	"github.com/jdufort/amethystebot/internal/post"
	"github.com/jdufort/amethystebot/internal/store"
	"github.com/samber/do"
)

type Input struct {
	Date    string   `json:"date,omitempty"`
	Effect  string   `json:"effect,omitempty"`
	Avatars []string `json:"avatars,omitempty"`
	Style   string   `json:"style,omitempty"`
}

func (i Input) toEffectParams() effect.Params {
	return effect.Params{
		Effect:  i.Effect,
		Avatars: i.Avatars,
		Style:   i.Style,
	}
}

func (i Input) toMetadata() map[string]string {
	return map[string]string{
		"date":    i.Date,
		"effect":  i.Effect,
		"style":   i.Style,
		"avatars": strings.Join(i.Avatars, " "),
	}
}

type Output Input

type Handler struct {
	randomizer  *effect.Randomizer
	generator   effect.Generator
	uploader    store.Uploader
	invalidator store.Invalidator
	templator   *page.Templator
	feeder      feed.Builder
	poster      post.Poster
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		randomizer:  do.MustInvoke[*effect.Randomizer](i),
		generator:   do.MustInvoke[effect.Generator](i),
		uploader:    do.MustInvoke[store.Uploader](i),
		invalidator: do.MustInvoke[store.Invalidator](i),
		templator:   do.MustInvoke[*page.Templator](i),
		feeder:      do.MustInvoke[feed.Builder](i),
		poster:      do.MustInvoke[post.Poster](i),
	}, nil
}

func (h *Handler) Handle(ctx context.Context, input Input) (Output, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler").With("input", input)
	log.Info("handling lambda invocation")

	if input.Effect == "" {
		params, err := h.randomizer.Randomize(ctx)
		if err != nil {
			return Output{}, err
		}
		input.Effect = params.Effect
		input.Avatars = params.Avatars
		input.Style = params.Style
	}

	latest := false
	if input.Date == "" {
		input.Date = time.Now().UTC().Format("20060102")
		latest = true
	}

	img, contentType, err := h.generator.Generate(ctx, input.toEffectParams())
	if err != nil {
		return Output{}, err
	}
	ext := "." + strings.TrimPrefix(contentType, "image/")

	html, err := h.templator.Template(ctx, page.Params{
		Image:  input.Date + ext,
		Effect: input.Effect,
		Style:  input.Style,
	})
	if err != nil {
		return Output{}, err
	}

	metadata := input.toMetadata()
	uploads := []store.UploadParams{
		{
			Name:        input.Date + ext,
			Data:        img,
			ContentType: contentType,
			Metadata:    metadata,
		},
		{
			Name:        input.Date + ".html",
			Data:        html,
			ContentType: "text/html",
			Metadata:    metadata,
		},
	}
	if latest {
		uploads = append(uploads,
			store.UploadParams{
				Name:        "latest" + ext,
				Data:        img,
				ContentType: contentType,
				Metadata:    metadata,
			},
			store.UploadParams{
				Name:        "latest.html",
				Data:        html,
				ContentType: "text/html",
				Metadata:    metadata,
			},
		)
	}
	for _, u := range uploads {
		if err := h.uploader.Upload(ctx, u); err != nil {
			return Output{}, err
		}
	}

	// The feed is rebuilt after the image upload so it includes today's entry.
	rss, err := h.feeder.Generate(ctx)
	if err != nil {
		return Output{}, err
	}
	if err := h.uploader.Upload(ctx, store.UploadParams{
		Name:        "feed.xml",
		Data:        rss,
		ContentType: "application/rss+xml",
	}); err != nil {
		return Output{}, err
	}

	paths := []string{"/" + input.Date + ext, "/" + input.Date + ".html", "/feed.xml"}
	if latest {
		paths = append(paths, "/latest"+ext, "/latest.html")
	}
	if err := h.invalidator.Invalidate(ctx, paths); err != nil {
		return Output{}, err
	}

	if latest {
		if err := h.poster.Post(ctx, post.Params{
			Date:   input.Date,
			Effect: input.Effect,
			Style:  input.Style,
		}); err != nil {
			return Output{}, err
		}
	}

	return Output(input), nil
}
