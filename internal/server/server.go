package server

import (
	"encoding/base64"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/nutriscan/nutriscan-backend/internal/analysis"
	"github.com/rs/zerolog/log"
)

type analyzeRequest struct {
	OcrText      string          `json:"ocrText"`
	Barcode      string          `json:"barcode"`
	ImageBase64  string          `json:"imageBase64"`
	Profile      *profilePayload `json:"profile"`
	PortionSize  float64         `json:"portionSize"`
	AddedOil     bool            `json:"addedOil"`
	IsRestaurant bool            `json:"isRestaurant"`
}

// profilePayload mirrors the client's profile object. Weight and height must
// both be positive for the profile to count; a profile failing validation is
// treated as absent, not as a bad request.
type profilePayload struct {
	Weight       float64 `json:"weight" validate:"required,gt=0"`
	Height       float64 `json:"height" validate:"required,gt=0"`
	Age          float64 `json:"age" validate:"omitempty,gt=0"`
	Gender       string  `json:"gender"`
	Activity     string  `json:"activity"`
	Goal         string  `json:"goal"`
	TargetWeight float64 `json:"targetWeight" validate:"omitempty,gt=0"`
	TargetMuscle float64 `json:"targetMuscle" validate:"omitempty,gt=0"`
	Timeframe    float64 `json:"timeframe" validate:"omitempty,gt=0"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
}

type imageResponse struct {
	Result      string               `json:"result"`
	FoodName    string               `json:"foodName"`
	Calories    float64              `json:"calories"`
	Protein     float64              `json:"protein"`
	Carbs       float64              `json:"carbs"`
	Fat         float64              `json:"fat"`
	HealthClass analysis.HealthClass `json:"healthClass"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	app      *fiber.App
	service  *analysis.Service
	validate *validator.Validate
}

func New(service *analysis.Service) *Server {
	s := &Server{
		app:      fiber.New(),
		service:  service,
		validate: validator.New(),
	}

	s.app.Use(cors.New())
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Post("/analyze", s.handleAnalyze)

	return s
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var body analyzeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "virheellinen pyyntö"})
	}

	req := analysis.Request{
		OcrText:      body.OcrText,
		Barcode:      body.Barcode,
		Profile:      s.profileFromPayload(body.Profile),
		PortionSize:  body.PortionSize,
		AddedOil:     body.AddedOil,
		IsRestaurant: body.IsRestaurant,
	}

	if body.ImageBase64 != "" {
		imageData, err := base64.StdEncoding.DecodeString(body.ImageBase64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "virheellinen kuvadata"})
		}
		req.ImageJPEG = imageData
	}

	outcome, err := s.service.Analyze(c.Context(), req)
	switch {
	case errors.Is(err, analysis.ErrMissingEvidence):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "OCR-teksti puuttuu"})
	case err != nil:
		// Upstream detail goes to the log only, never to the client.
		log.Error().Err(err).Msg("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "Jokin meni pieleen"})
	}

	switch {
	case outcome.NotFound:
		return c.JSON(fiber.Map{"notFound": true})
	case outcome.Image != nil:
		return c.JSON(imageResponse{
			Result:      outcome.Image.Result,
			FoodName:    outcome.Image.Estimate.FoodName,
			Calories:    outcome.Image.Estimate.Calories,
			Protein:     outcome.Image.Estimate.Protein,
			Carbs:       outcome.Image.Estimate.Carbs,
			Fat:         outcome.Image.Estimate.Fat,
			HealthClass: outcome.Image.Estimate.HealthClass,
		})
	default:
		return c.JSON(outcome.Envelope)
	}
}

// profileFromPayload converts the wire profile into the pipeline's form. A
// payload that fails validation is logged and dropped, which downgrades the
// request to an unpersonalized analysis instead of rejecting it.
func (s *Server) profileFromPayload(p *profilePayload) *analysis.Profile {
	if p == nil {
		return nil
	}
	if err := s.validate.Struct(p); err != nil {
		log.Warn().Err(err).Msg("ignoring invalid profile payload")
		return nil
	}
	return &analysis.Profile{
		WeightKg:        p.Weight,
		HeightCm:        p.Height,
		AgeYears:        p.Age,
		Gender:          p.Gender,
		ActivityLevel:   p.Activity,
		Goal:            p.Goal,
		TargetWeightKg:  p.TargetWeight,
		TargetMuscleKg:  p.TargetMuscle,
		TimeframeMonths: p.Timeframe,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
	}
}
