package analysis

import "errors"

// EvidenceKind discriminates the three input modalities. A barcode is
// resolved to packaging text during normalization, so downstream code only
// ever sees Image or OcrText.
type EvidenceKind int

const (
	EvidenceImage EvidenceKind = iota
	EvidenceOcrText
)

// Evidence is the normalized input to one analysis. Exactly one modality is
// populated: ImageJPEG for photos, Text for OCR and barcode-derived facts.
type Evidence struct {
	Kind      EvidenceKind
	ImageJPEG []byte
	Text      string
}

// HealthClass is a three-tier ordinal healthfulness rating, rendered with
// the traffic-light emoji the clients display verbatim.
type HealthClass string

const (
	HealthGood     HealthClass = "🟢"
	HealthModerate HealthClass = "🟡"
	HealthPoor     HealthClass = "🔴"
)

// valid reports whether h is one of the three known tiers.
func (h HealthClass) valid() bool {
	return h == HealthGood || h == HealthModerate || h == HealthPoor
}

// NutritionEstimate is one structured observation of a single food item.
// All numeric fields are whole, finite and non-negative after normalization.
type NutritionEstimate struct {
	FoodName    string      `json:"foodName"`
	Calories    float64     `json:"calories"`
	Protein     float64     `json:"protein"`
	Carbs       float64     `json:"carbs"`
	Fat         float64     `json:"fat"`
	HealthClass HealthClass `json:"healthClass"`
}

// Product is one entry of the structured envelope's product list. Calories
// are per 100 g / 100 ml as instructed in the prompt.
type Product struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// EnvelopeResult is the sanitized outcome of a text-evidence analysis.
type EnvelopeResult struct {
	Result        string    `json:"result"`
	Products      []Product `json:"products"`
	TotalCalories float64   `json:"totalCalories"`
	SuggestedName string    `json:"suggestedName"`
}

// ImageResult is the outcome of an image-evidence analysis: the adjusted
// estimate plus the locally rendered narrative shown to the user.
type ImageResult struct {
	Result   string
	Estimate NutritionEstimate
}

// Request carries one decoded /analyze request through the pipeline.
type Request struct {
	OcrText      string
	Barcode      string
	ImageJPEG    []byte
	Profile      *Profile
	PortionSize  float64
	AddedOil     bool
	IsRestaurant bool
}

// Outcome is the result of one analysis. Exactly one of NotFound, Image and
// Envelope is set.
type Outcome struct {
	NotFound bool
	Image    *ImageResult
	Envelope *EnvelopeResult
}

// ErrMissingEvidence is returned when a request carries no image, barcode or
// OCR text. It maps to a 400 at the HTTP boundary.
var ErrMissingEvidence = errors.New("no image, barcode or OCR text in request")

// errProductNotFound short-circuits the barcode path; it never crosses the
// service boundary as an error, only as the NotFound outcome.
var errProductNotFound = errors.New("product not found in catalog")
