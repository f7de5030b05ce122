package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelopeStripsCodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"result\":\"ok\",\"products\":[],\"totalCalories\":5}\n```"},
		{"bare fence", "```\n{\"result\":\"ok\",\"products\":[],\"totalCalories\":5}\n```"},
		{"uppercase tag", "```JSON\n{\"result\":\"ok\",\"products\":[],\"totalCalories\":5}\n```"},
		{"no fence", "{\"result\":\"ok\",\"products\":[],\"totalCalories\":5}"},
		{"surrounding prose", "Tässä tulos:\n{\"result\":\"ok\",\"products\":[],\"totalCalories\":5}\nOle hyvä!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEnvelope(tt.raw)
			assert.Equal(t, "ok", got.Result)
			assert.Empty(t, got.Products)
			assert.Equal(t, 5.0, got.TotalCalories)
			assert.Equal(t, "", got.SuggestedName)
		})
	}
}

func TestParseEnvelopeIdempotentOnWellFormedInput(t *testing.T) {
	input := `{"result":"ok","products":[{"name":"Maito","calories":100}],"totalCalories":100}`

	first := ParseEnvelope(input)
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	second := ParseEnvelope(string(encoded))

	assert.Equal(t, first.Result, second.Result)
	assert.Equal(t, first.Products, second.Products)
	assert.Equal(t, first.TotalCalories, second.TotalCalories)
	assert.Equal(t, "Maito", second.SuggestedName)
}

func TestParseEnvelopeRecomputesTotal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{
			name: "missing total, non-numeric product calories treated as zero",
			raw:  `{"result":"x","products":[{"calories":150},{"calories":"bad"},{"calories":50}]}`,
			want: 200,
		},
		{
			name: "string total recomputed",
			raw:  `{"result":"x","products":[{"calories":30}],"totalCalories":"NaN"}`,
			want: 30,
		},
		{
			name: "negative total recomputed",
			raw:  `{"result":"x","products":[{"calories":30}],"totalCalories":-5}`,
			want: 30,
		},
		{
			name: "finite reported total preferred",
			raw:  `{"result":"x","products":[{"calories":30}],"totalCalories":999}`,
			want: 999,
		},
		{
			name: "numeric string product calories accepted",
			raw:  `{"result":"x","products":[{"calories":"12.5"}]}`,
			want: 12.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEnvelope(tt.raw)
			assert.Equal(t, tt.want, got.TotalCalories)
		})
	}
}

func TestParseEnvelopeNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"ei jsonia ollenkaan",
		"{broken",
		"```json\n{still broken\n```",
		"null",
		"[1,2,3]",
		"{}",
		"\x00\x01\x02",
	}

	for _, input := range inputs {
		got := ParseEnvelope(input)
		assert.NotEmpty(t, got.Result, "input %q", input)
		assert.NotNil(t, got.Products, "input %q", input)
		assert.GreaterOrEqual(t, got.TotalCalories, 0.0, "input %q", input)
	}
}

func TestParseEnvelopeFallbackRecord(t *testing.T) {
	got := ParseEnvelope("ei jsonia")
	assert.Equal(t, fallbackResultText, got.Result)
	assert.Empty(t, got.Products)
	assert.Equal(t, 0.0, got.TotalCalories)
	assert.Equal(t, "", got.SuggestedName)
}

func TestParseEnvelopeFieldCoercion(t *testing.T) {
	t.Run("non-string result replaced", func(t *testing.T) {
		got := ParseEnvelope(`{"result":5,"products":[],"totalCalories":3}`)
		assert.Equal(t, invalidResultText, got.Result)
		assert.Equal(t, 3.0, got.TotalCalories)
	})

	t.Run("result trimmed", func(t *testing.T) {
		got := ParseEnvelope(`{"result":"  ok  ","products":[],"totalCalories":0}`)
		assert.Equal(t, "ok", got.Result)
	})

	t.Run("non-array products replaced by empty", func(t *testing.T) {
		got := ParseEnvelope(`{"result":"x","products":"bad","totalCalories":"bad"}`)
		assert.Empty(t, got.Products)
		assert.Equal(t, 0.0, got.TotalCalories)
	})

	t.Run("non-object product entries skipped", func(t *testing.T) {
		got := ParseEnvelope(`{"result":"x","products":[7,{"name":"A","calories":10}]}`)
		assert.Equal(t, []Product{{Name: "A", Calories: 10}}, got.Products)
	})

	t.Run("product order preserved", func(t *testing.T) {
		got := ParseEnvelope(`{"result":"x","products":[{"name":"B","calories":1},{"name":"A","calories":2}]}`)
		assert.Equal(t, "B", got.Products[0].Name)
		assert.Equal(t, "A", got.Products[1].Name)
	})
}

func TestSuggestedName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"zero products", `{"result":"x","products":[]}`, ""},
		{"one product", `{"result":"x","products":[{"name":"Maito","calories":40}]}`, "Maito"},
		{"two products", `{"result":"x","products":[{"name":"Maito","calories":40},{"name":"Leipä","calories":250}]}`, "Maito, Leipä"},
		{"nameless entries dropped from join", `{"result":"x","products":[{"name":"Maito"},{"calories":10}]}`, "Maito"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEnvelope(tt.raw).SuggestedName)
		})
	}
}

func TestParseVision(t *testing.T) {
	t.Run("well-formed reply", func(t *testing.T) {
		raw := "```json\n{\"foodName\":\"Kana-riisiannos\",\"calories\":650,\"protein\":40,\"carbs\":60,\"fat\":20,\"healthClass\":\"🟢\"}\n```"
		got := ParseVision(raw)
		assert.Equal(t, "Kana-riisiannos", got.FoodName)
		assert.Equal(t, 650.0, got.Calories)
		assert.Equal(t, 40.0, got.Protein)
		assert.Equal(t, 60.0, got.Carbs)
		assert.Equal(t, 20.0, got.Fat)
		assert.Equal(t, HealthGood, got.HealthClass)
	})

	t.Run("fields degrade independently", func(t *testing.T) {
		got := ParseVision(`{"foodName":"Puuro","calories":"abc","fat":-3,"healthClass":"purple"}`)
		assert.Equal(t, "Puuro", got.FoodName)
		assert.Equal(t, 0.0, got.Calories)
		assert.Equal(t, 0.0, got.Protein)
		assert.Equal(t, 0.0, got.Fat)
		assert.Equal(t, HealthModerate, got.HealthClass)
	})

	t.Run("empty food name gets placeholder", func(t *testing.T) {
		got := ParseVision(`{"foodName":"","calories":100}`)
		assert.Equal(t, unknownFoodName, got.FoodName)
		assert.Equal(t, 100.0, got.Calories)
	})

	t.Run("unparseable reply degrades to placeholder estimate", func(t *testing.T) {
		got := ParseVision("en osaa sanoa")
		assert.Equal(t, unknownFoodName, got.FoodName)
		assert.Equal(t, 0.0, got.Calories)
		assert.Equal(t, HealthModerate, got.HealthClass)
	})
}
