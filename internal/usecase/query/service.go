// Package query orchestrates one question end to end: intent parsing,
// deterministic retrieval, answer building and optional narrative
// formatting. Everything up to the narrative step is synchronous, pure
// computation over the shared read-only corpus.
package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	intentdom "github.com/opencamara/actadex/internal/domain/intent"
	"github.com/opencamara/actadex/internal/logger"
	"github.com/opencamara/actadex/internal/usecase/answer"
	intentuc "github.com/opencamara/actadex/internal/usecase/intent"
	"github.com/opencamara/actadex/internal/usecase/search"
)

// Response is the answer to one question. Data carries the structured
// answer of the builder selected by the intent type; found=false inside
// Data is a normal response, never an error.
type Response struct {
	ID        string           `json:"id"`
	Question  string           `json:"question"`
	Intent    intentdom.Intent `json:"intent"`
	Data      any              `json:"data"`
	Narrative string           `json:"narrative,omitempty"`
}

// Service answers questions over the transcript corpus.
type Service struct {
	corpus   CorpusReader
	builder  *answer.Builder
	narrator Narrator
}

// New creates a query service without narrative formatting.
func New(corpus CorpusReader, builder *answer.Builder) *Service {
	return &Service{corpus: corpus, builder: builder}
}

// WithNarrator enables narrative formatting of structured answers.
func (s *Service) WithNarrator(n Narrator) *Service {
	s.narrator = n
	return s
}

// Session returns every chunk of one session in transcript order.
func (s *Service) Session(_ context.Context, session string) (answer.ChunkList, error) {
	chunks, err := s.corpus.Chunks()
	if err != nil {
		return answer.ChunkList{}, fmt.Errorf("load corpus: %w", err)
	}

	it := intentdom.Intent{
		Type:    intentdom.SessionSearch,
		Session: session,
		Filters: intentdom.Filters{Session: session},
	}
	return s.builder.ChunkList(it, search.SessionChunks(chunks, session)), nil
}

// Answer processes one question. Narration is best-effort: a narrator
// failure is logged and the structured answer is returned without prose.
func (s *Service) Answer(ctx context.Context, question string) (Response, error) {
	chunks, err := s.corpus.Chunks()
	if err != nil {
		return Response{}, fmt.Errorf("load corpus: %w", err)
	}

	it := intentuc.Parse(question)

	var data any
	switch it.Type {
	case intentdom.Briefing:
		data = s.builder.Briefing(it, search.SessionChunks(chunks, it.Session))
	case intentdom.Position:
		data = s.builder.Position(it, search.Chunks(chunks, it.Filters))
	case intentdom.Quote:
		data = s.builder.Quotes(it, search.Chunks(chunks, it.Filters))
	case intentdom.Comparison:
		data = s.builder.Comparison(it, search.Chunks(chunks, it.Filters))
	default:
		// session_search and the generic search fallback return the
		// matched chunks themselves.
		data = s.builder.ChunkList(it, search.Chunks(chunks, it.Filters))
	}

	resp := Response{
		ID:       uuid.NewString(),
		Question: question,
		Intent:   it,
		Data:     data,
	}

	if s.narrator != nil {
		text, err := s.narrator.Narrate(ctx, question, data)
		if err != nil {
			logger.FromContext(ctx).Warn("Narrative formatting failed, returning structured answer only",
				zap.String("intent_type", string(it.Type)),
				zap.Error(err),
			)
		} else {
			resp.Narrative = text
		}
	}

	return resp, nil
}
