package catalog

import (
	"fmt"
	"strings"
)

// RenderFacts renders a catalog product into the textual nutrition-facts
// form the analysis pipeline consumes. The output mirrors what OCR of the
// product's packaging would produce.
func RenderFacts(p Product) string {
	var b strings.Builder

	name := p.ProductName
	if name == "" {
		name = "Tuntematon tuote"
	}
	fmt.Fprintf(&b, "Tuote: %s\n", name)
	if p.Brands != "" {
		fmt.Fprintf(&b, "Valmistaja: %s\n", p.Brands)
	}
	if p.Quantity != "" {
		fmt.Fprintf(&b, "Pakkauskoko: %s\n", p.Quantity)
	}

	b.WriteString("\nRavintosisältö per 100 g / 100 ml:\n")
	fmt.Fprintf(&b, "Energia: %.1f kcal\n", p.Nutriments.EnergyKcal100g)
	fmt.Fprintf(&b, "Rasva: %.1f g\n", p.Nutriments.Fat100g)
	fmt.Fprintf(&b, "Hiilihydraatit: %.1f g\n", p.Nutriments.Carbs100g)
	fmt.Fprintf(&b, "Joista sokereita: %.1f g\n", p.Nutriments.Sugars100g)
	fmt.Fprintf(&b, "Proteiini: %.1f g\n", p.Nutriments.Proteins100g)
	fmt.Fprintf(&b, "Suola: %.1f g\n", p.Nutriments.Salt100g)

	if p.NutriscoreGrade != "" {
		fmt.Fprintf(&b, "\nNutri-Score: %s\n", strings.ToUpper(p.NutriscoreGrade))
	}
	if p.NovaGroup > 0 {
		fmt.Fprintf(&b, "NOVA-luokka: %d\n", p.NovaGroup)
	}
	if p.IngredientsText != "" {
		fmt.Fprintf(&b, "\nAinesosat: %s\n", p.IngredientsText)
	}

	return b.String()
}
