package store

import (
	"context"
	"os"

	"github.com/jdufort/amethystebot/internal/log"
	"github.com/samber/do"
)

type UploadParams struct {
	Name        string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

type Uploader interface {
	Upload(context.Context, UploadParams) error
}

// FileUploader writes uploads to the working directory. Used when no bucket
// is configured, mostly for running the handler locally.
type FileUploader struct{}

func NewFileUploader(i *do.Injector) (Uploader, error) {
	return &FileUploader{}, nil
}

func (*FileUploader) Upload(ctx context.Context, params UploadParams) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("file")
	log.Info("writing", "file", params.Name)
	return os.WriteFile(params.Name, params.Data, 0600)
}
