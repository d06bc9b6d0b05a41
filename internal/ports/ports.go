package ports

import (
	"context"
	"time"

	"GazetteDigest/internal/domain"
)

// DocumentSource pulls the day's ranked gazette documents.
type DocumentSource interface {
	FetchRanked(ctx context.Context, day time.Time) ([]domain.Document, error)
}

// TextFetcher retrieves the full text of a document from its page.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// DigestRepository remembers which documents were already published.
type DigestRepository interface {
	AlreadyPublished(ctx context.Context, ids []string) (map[string]bool, error)
	SaveDigest(ctx context.Context, record domain.DigestRecord) error
}

// Notifier publishes a rendered digest to a messaging channel.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
