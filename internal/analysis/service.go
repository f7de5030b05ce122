package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutriscan/nutriscan-backend/internal/llm"
	"github.com/rs/zerolog/log"
)

// Gateway generates model output for a composed prompt. Implemented by the
// Gemini client; stubbed in tests.
type Gateway interface {
	Generate(ctx context.Context, prompt llm.Prompt) (string, error)
}

// ProductLookup resolves a barcode to rendered nutrition-facts text. The
// found flag is false when the catalog has no matching product.
type ProductLookup interface {
	LookupFacts(ctx context.Context, barcode string) (text string, found bool, err error)
}

// Service drives one analysis end to end: evidence normalization, prompt
// composition, the model call and response sanitization. It holds no state
// between requests.
type Service struct {
	gateway Gateway
	catalog ProductLookup
}

func NewService(gateway Gateway, catalog ProductLookup) *Service {
	return &Service{gateway: gateway, catalog: catalog}
}

// Analyze runs one request through the pipeline. The returned error is
// either ErrMissingEvidence or a wrapped upstream failure; everything else
// resolves to a well-formed Outcome.
func (s *Service) Analyze(ctx context.Context, req Request) (Outcome, error) {
	evidence, err := s.normalize(ctx, req)
	if errors.Is(err, errProductNotFound) {
		return Outcome{NotFound: true}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	prompt := Compose(evidence, req.Profile)

	raw, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		return Outcome{}, fmt.Errorf("model call failed: %w", err)
	}

	if evidence.Kind == EvidenceImage {
		base := ParseVision(raw)
		adjusted := Adjust(base, req.PortionSize, req.AddedOil, req.IsRestaurant)

		var text string
		if req.Profile.Present() {
			text = ProfileAwareText(adjusted, req.Profile)
		} else {
			text = GenericText(adjusted)
		}
		return Outcome{Image: &ImageResult{Result: text, Estimate: adjusted}}, nil
	}

	envelope := ParseEnvelope(raw)
	return Outcome{Envelope: &envelope}, nil
}

// normalize converts the raw request into exactly one Evidence. The barcode
// path performs the single outbound catalog call; a broken catalog is folded
// into the not-found outcome rather than surfaced as a server error.
func (s *Service) normalize(ctx context.Context, req Request) (Evidence, error) {
	switch {
	case len(req.ImageJPEG) > 0:
		return Evidence{Kind: EvidenceImage, ImageJPEG: req.ImageJPEG}, nil
	case req.Barcode != "":
		text, found, err := s.catalog.LookupFacts(ctx, req.Barcode)
		if err != nil {
			log.Warn().Err(err).Str("barcode", req.Barcode).Msg("catalog lookup failed, treating as not found")
			return Evidence{}, errProductNotFound
		}
		if !found {
			return Evidence{}, errProductNotFound
		}
		return Evidence{Kind: EvidenceOcrText, Text: text}, nil
	case req.OcrText != "":
		return Evidence{Kind: EvidenceOcrText, Text: req.OcrText}, nil
	default:
		return Evidence{}, ErrMissingEvidence
	}
}
