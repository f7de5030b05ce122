package analysis

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	fallbackResultText = "❌ Analyysi epäonnistui. Yritä uudelleen tai skannaa selkeämpi kuva."
	invalidResultText  = "Analyysi epäonnistui"
	unknownFoodName    = "Tuntematon annos"
)

// stripCodeFences removes a leading markdown code-fence marker (with or
// without a language tag) and a trailing one. The model frequently wraps its
// JSON in fencing despite instructions not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(strings.ToLower(text), "```json") {
		text = text[len("```json"):]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// extractObjectSpan returns the substring between the first '{' and the last
// '}' inclusive, discarding commentary the model may wrap around its JSON.
// When no such span exists the whole text is returned as the candidate.
func extractObjectSpan(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return text
	}
	return text[start : end+1]
}

// coerceNumber converts an untrusted decoded JSON value to a finite float64.
// Numeric strings count; anything else fails.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// ParseEnvelope reconstructs the three-field structured envelope from the
// model's free-text reply. It never fails: any structural defect degrades to
// the fixed fallback, and every field is coerced independently so a
// partially malformed reply keeps its usable parts.
func ParseEnvelope(raw string) EnvelopeResult {
	candidate := extractObjectSpan(stripCodeFences(raw))

	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return EnvelopeResult{
			Result:   fallbackResultText,
			Products: []Product{},
		}
	}

	out := EnvelopeResult{Products: []Product{}}

	if s, ok := coerceString(payload["result"]); ok {
		out.Result = strings.TrimSpace(s)
	} else {
		out.Result = invalidResultText
	}

	if list, ok := payload["products"].([]any); ok {
		for _, entry := range list {
			fields, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			var product Product
			if name, ok := coerceString(fields["name"]); ok {
				product.Name = name
			}
			if calories, ok := coerceNumber(fields["calories"]); ok && calories > 0 {
				product.Calories = calories
			}
			out.Products = append(out.Products, product)
		}
	}

	if total, ok := coerceNumber(payload["totalCalories"]); ok && total >= 0 {
		out.TotalCalories = total
	} else {
		sum := 0.0
		for _, p := range out.Products {
			sum += p.Calories
		}
		out.TotalCalories = sum
	}

	out.SuggestedName = suggestedName(out.Products)

	return out
}

// suggestedName derives a display name from the product list: empty for
// none, the single name for one, a comma-joined list otherwise.
func suggestedName(products []Product) string {
	switch len(products) {
	case 0:
		return ""
	case 1:
		return products[0].Name
	default:
		names := make([]string, 0, len(products))
		for _, p := range products {
			if p.Name != "" {
				names = append(names, p.Name)
			}
		}
		return strings.Join(names, ", ")
	}
}

// ParseVision reconstructs a nutrition estimate from the vision model's
// reply. Each field defaults independently when absent or of the wrong type;
// a wholly unparseable reply degrades to the placeholder estimate.
func ParseVision(raw string) NutritionEstimate {
	candidate := extractObjectSpan(stripCodeFences(raw))

	est := NutritionEstimate{
		FoodName:    unknownFoodName,
		HealthClass: HealthModerate,
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return est
	}

	if name, ok := coerceString(payload["foodName"]); ok && name != "" {
		est.FoodName = name
	}
	est.Calories = coerceNonNegative(payload["calories"])
	est.Protein = coerceNonNegative(payload["protein"])
	est.Carbs = coerceNonNegative(payload["carbs"])
	est.Fat = coerceNonNegative(payload["fat"])

	if class, ok := coerceString(payload["healthClass"]); ok {
		if hc := HealthClass(strings.TrimSpace(class)); hc.valid() {
			est.HealthClass = hc
		}
	}

	return est
}

func coerceNonNegative(v any) float64 {
	n, ok := coerceNumber(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}
