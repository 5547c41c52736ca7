package inject

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/jdufort/amethystebot/amethyste"
	"github.com/jdufort/amethystebot/internal/effect"
	"github.com/jdufort/amethystebot/internal/feed"
	"github.com/jdufort/amethystebot/internal/handler"
	"github.com/jdufort/amethystebot/internal/log"
	"github.com/jdufort/amethystebot/internal/page"
	"github.com/jdufort/amethystebot/internal/param"
	"github.com/jdufort/amethystebot/internal/post"
	"github.com/jdufort/amethystebot/internal/store"
	"github.com/samber/do"
	"github.com/samber/lo"
)

func Setup(ctx context.Context) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Info(fmt.Sprintf(format, args))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return config.LoadDefaultConfig(ctx)
	})
	do.Provide[*ssm.Client](injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*cloudfront.Client](injector, func(i *do.Injector) (*cloudfront.Client, error) {
		return cloudfront.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.ProvideValue[*http.Client](injector, &http.Client{Timeout: 30 * time.Second})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.Provide[*amethyste.Client](injector, func(i *do.Injector) (*amethyste.Client, error) {
		key := do.MustInvokeNamed[string](i, "amethyste_key")
		return amethyste.New(key, amethyste.WithHTTPClient(do.MustInvoke[*http.Client](i))), nil
	})
	do.Provide[*effect.Randomizer](injector, effect.NewRandomizer)
	do.Provide[effect.Generator](injector, effect.NewAmethysteGenerator)
	do.Provide[store.Uploader](injector, lo.Ternary(os.Getenv("BUCKET") == "", store.NewFileUploader, store.NewS3Uploader))
	do.Provide[store.Invalidator](injector, store.NewCloudFrontInvalidator)
	do.Provide[*page.Templator](injector, page.NewTemplator)
	do.Provide[feed.Builder](injector, feed.NewS3Generator)
	do.Provide[post.Poster](injector, post.NewRedditPoster)

	do.ProvideNamed[string](injector, "amethyste_key", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("AMETHYSTE_KEY_PARAM"))
	})
	do.ProvideNamed[[]string](injector, "avatars", func(i *do.Injector) ([]string, error) {
		return do.MustInvoke[param.Fetcher](i).FetchAll(ctx, os.Getenv("AVATARS_PARAM"))
	})
	do.ProvideNamed[string](injector, "reddit_client_id", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("REDDIT_CLIENT_ID_PARAM"))
	})
	do.ProvideNamed[string](injector, "reddit_client_secret", func(i *do.Injector) (string, error) {
		return do.MustInvoke[param.Fetcher](i).Fetch(ctx, os.Getenv("REDDIT_CLIENT_SECRET_PARAM"))
	})
	do.ProvideNamedValue[string](injector, "bucket", os.Getenv("BUCKET"))
	do.ProvideNamedValue[string](injector, "distribution", os.Getenv("DISTRIBUTION"))
	do.ProvideNamedValue[string](injector, "subreddit", os.Getenv("SUBREDDIT"))

	do.Provide[*handler.Handler](injector, handler.NewHandler)

	return injector
}
