package usecase

import (
	"log/slog"

	"GazetteDigest/internal/classifier"
	"GazetteDigest/internal/digest"
	"GazetteDigest/internal/domain"
	"GazetteDigest/internal/marker"
	"GazetteDigest/internal/ranking"
	"GazetteDigest/internal/sanitizer"
	"GazetteDigest/internal/segmenter"
)

// Stages carries the components of the act pipeline, in execution order.
type Stages struct {
	Segmenter  *segmenter.Segmenter
	Sanitizer  *sanitizer.Sanitizer
	Classifier *classifier.Classifier
	Scorer     *ranking.Scorer
	Orderer    *ranking.Orderer
	Markers    *marker.Assigner
	Renderer   *digest.Renderer
	Logger     *slog.Logger
}

// DigestBuilder turns a batch of documents into a rendered digest. It is
// synchronous and keeps no state between calls.
type DigestBuilder struct {
	stages Stages
	logger *slog.Logger
}

// NewDigestBuilder wires the stages.
func NewDigestBuilder(stages Stages) *DigestBuilder {
	return &DigestBuilder{stages: stages, logger: stages.Logger}
}

// Build runs every stage and renders the result.
func (b *DigestBuilder) Build(docs []domain.Document) domain.Digest {
	sections := b.Sections(docs)
	return domain.Digest{
		Date:     b.stages.Renderer.Date(),
		Sections: sections,
		Text:     b.stages.Renderer.Render(sections),
	}
}

// Sections runs the pipeline up to marker assignment.
func (b *DigestBuilder) Sections(docs []domain.Document) []domain.Section {
	sections := b.stages.Orderer.Order(b.Acts(docs))
	for i := range sections {
		for j := range sections[i].Acts {
			act := &sections[i].Acts[j]
			act.Marker = b.stages.Markers.Assign(act.Text)
		}
	}
	b.debug("sections ordered", "sections", len(sections))
	return sections
}

// Acts returns the cleaned, labelled and scored acts: segmented acts first,
// then one act per document without trigger verbs.
func (b *DigestBuilder) Acts(docs []domain.Document) []domain.Act {
	var withActs, noActs []domain.Document
	for _, doc := range docs {
		doc.FullText = sanitizer.Normalize(doc.FullText)
		if doc.Label == "" {
			doc.Label = b.stages.Classifier.Label(doc.Origin)
		}
		if b.stages.Segmenter.HasActs(doc.FullText) {
			withActs = append(withActs, doc)
		} else {
			noActs = append(noActs, doc)
		}
	}
	b.debug("documents split", "with_acts", len(withActs), "no_acts", len(noActs))

	var (
		acts      []domain.Act
		segmented int
		dropped   int
		relabeled int
	)
	for _, doc := range withActs {
		for _, raw := range b.stages.Segmenter.Split(doc) {
			segmented++
			act, keep := b.stages.Sanitizer.Clean(raw)
			if !keep {
				dropped++
				continue
			}
			act.Importance = b.stages.Scorer.Score(act.Text)
			if label := b.stages.Classifier.Relabel(act.Label, act.Text); label != act.Label {
				relabeled++
				act = act.WithLabel(label)
			}
			acts = append(acts, act)
		}
	}
	b.debug("acts cleaned", "segmented", segmented, "low_tier_dropped", dropped, "relabeled", relabeled)

	for _, doc := range noActs {
		act := b.stages.Sanitizer.CleanNoAct(domain.Act{
			DocumentID: doc.ID,
			URL:        doc.URL,
			Label:      doc.Label,
			Text:       doc.FullText,
			NoAct:      true,
		})
		act.Importance = b.stages.Scorer.Score(act.Text)
		acts = append(acts, act)
	}
	return acts
}

func (b *DigestBuilder) debug(msg string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}
