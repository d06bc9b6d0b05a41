package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.DocumentSource
	Fetcher    ports.TextFetcher
	Repository ports.DigestRepository
	Notifier   ports.Notifier
	Builder    *DigestBuilder
	Logger     *slog.Logger
}

// Pipeline implements the daily digest workflow.
type Pipeline struct {
	source     ports.DocumentSource
	fetcher    ports.TextFetcher
	repository ports.DigestRepository
	notifier   ports.Notifier
	builder    *DigestBuilder
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		fetcher:    deps.Fetcher,
		repository: deps.Repository,
		notifier:   deps.Notifier,
		builder:    deps.Builder,
		logger:     deps.Logger,
	}
}

// ProcessDay fetches the day's documents, builds the digest, publishes it
// and records which documents went out. It returns the digest built, which
// is empty when there was nothing new to publish.
func (p *Pipeline) ProcessDay(ctx context.Context, day time.Time) (domain.Digest, error) {
	if p.source == nil || p.builder == nil {
		return domain.Digest{}, nil
	}

	docs, err := p.source.FetchRanked(ctx, day)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("fetch ranked: %w", err)
	}
	p.debug("documents fetched", "count", len(docs), "day", day.Format("2006-01-02"))

	docs, err = p.skipPublished(ctx, docs)
	if err != nil {
		return domain.Digest{}, err
	}
	if len(docs) == 0 {
		p.debug("nothing new to publish")
		return domain.Digest{}, nil
	}

	if err := p.fillText(ctx, docs); err != nil {
		return domain.Digest{}, err
	}

	result := p.builder.Build(docs)

	// A failed publication records nothing, so messages sent before the
	// failure go out again on the next run.
	if p.notifier != nil {
		if err := p.notifier.PublishDigest(ctx, result.Text); err != nil {
			return result, fmt.Errorf("publish digest: %w", err)
		}
	}

	if p.repository != nil {
		record := domain.DigestRecord{
			ID:          uuid.NewString(),
			Day:         day,
			Text:        result.Text,
			DocumentIDs: documentIDs(docs),
		}
		if err := p.repository.SaveDigest(ctx, record); err != nil {
			return result, fmt.Errorf("persist digest %s: %w", record.ID, err)
		}
		p.debug("digest saved", "digest_id", record.ID, "documents", len(record.DocumentIDs))
	}

	return result, nil
}

func (p *Pipeline) skipPublished(ctx context.Context, docs []domain.Document) ([]domain.Document, error) {
	if p.repository == nil || len(docs) == 0 {
		return docs, nil
	}

	published, err := p.repository.AlreadyPublished(ctx, documentIDs(docs))
	if err != nil {
		return nil, fmt.Errorf("load published: %w", err)
	}

	fresh := docs[:0:0]
	for _, doc := range docs {
		if published[doc.ID] {
			continue
		}
		fresh = append(fresh, doc)
	}
	p.debug("published documents skipped", "skipped", len(docs)-len(fresh))
	return fresh, nil
}

// fillText fetches the page text of documents that arrived without it.
func (p *Pipeline) fillText(ctx context.Context, docs []domain.Document) error {
	if p.fetcher == nil {
		return nil
	}
	for i := range docs {
		if strings.TrimSpace(docs[i].FullText) != "" || docs[i].URL == "" {
			continue
		}
		text, err := p.fetcher.FetchText(ctx, docs[i].URL)
		if err != nil {
			return fmt.Errorf("fetch text of %s: %w", docs[i].ID, err)
		}
		docs[i].FullText = text
	}
	return nil
}

func documentIDs(docs []domain.Document) []string {
	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
