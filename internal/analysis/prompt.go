package analysis

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/nutriscan/nutriscan-backend/internal/llm"
)

var visionPrompt = strings.TrimSpace(dedent.Dedent(`
	Analysoi kuva ruoka-annoksesta ja palauta arvio NORMAALISTA annoskoosta (noin 300–400 g) seuraavassa JSON-muodossa:

	{
	  "foodName": "Ruoan nimi",
	  "calories": 650,
	  "protein": 40,
	  "carbs": 60,
	  "fat": 20,
	  "healthClass": "🟢"
	}

	- foodName: lyhyt, arkikielinen ruokalajin nimi (esim. "Kana-riisiannos")
	- calories, protein, carbs, fat: karkea arvio yhdestä normaalista annoksesta
	- healthClass: 🟢 (pääosin terveellinen), 🟡 (ok arjessa), 🔴 (raskas/epäterveellinen)

	Palauta VAIN JSON, ei mitään muuta tekstiä.`))

var envelopeBasePrompt = strings.TrimSpace(dedent.Dedent(`
	OLET TAUSTALLA TOIMIVA ANALYYSIMOOTTORI.

	⚠️ ERITTÄIN TÄRKEÄT SÄÄNNÖT:
	- KÄYTTÄJÄ NÄKEE VAIN JSON-KENTÄN "result"
	- ÄLÄ KOSKAAN lisää ohjeita, sääntöjä, JSON-rakennetta tai teknistä tekstiä "result"-kenttään
	- "result" on PUHDASTA käyttäjälle tarkoitettua analyysitekstiä
	- "products" ja "totalCalories" ovat vain sovelluksen sisäiseen käyttöön
	- ÄLÄ mainitse sanoja: JSON, kenttä, ohje, prompt, analyysi, malli

	⚠️ KRIITTINEN SÄÄNTÖ KALOREISTA:
	- KAIKKI kalorit TÄYTYY AINA olla per 100g tai per 100ml muodossa
	- JOS tuote on esim. 500ml ja sisältää 152 kcal yhteensä:
	  → Laske: 152 ÷ (500 ÷ 100) = 30.4 kcal per 100ml
	  → Palauta calories: 30.4
	- JOS ravintotaulukko näyttää jo "per 100g: 520 kcal":
	  → Palauta calories: 520 (sellaisenaan)
	- ÄLÄ KOSKAAN palauta tuotteen kokonaiskaloreja
	- Useamman tuotteen tapauksessa: jokainen calories per 100g/100ml, totalCalories on summa

	PALAUTA VASTAUS TÄSMÄLLEEN SEURAAVASSA RAKENTEESSA (EI MITÄÄN MUUTA):

	{
	  "result": "<vain käyttäjälle tarkoitettu teksti>",
	  "products": [
	    { "name": "Tuotteen nimi", "calories": 150 }
	  ],
	  "totalCalories": 150
	}

	HUOM: calories ja totalCalories AINA per 100g/100ml!`))

var envelopeGenericSection = strings.TrimSpace(dedent.Dedent(`
	TUOTTEEN OCR-TEKSTI:
	"""
	%s
	"""

	KÄYTTÄJÄLLE NÄYTETTÄVÄ TEKSTI ("result"):

	🟰 RAVINTOARVOT YHTEENSÄ
	🔥 Energia: X kcal
	🥑 Rasva: X g
	🍬 Joista sokerit: X g
	🍗 Proteiini: X g
	🧂 Suola: X g

	📝 ARVIO
	🟢 / 🟡 / 🔴 – lyhyt selitys (1–2 lausetta)

	🎯 JOHTOPÄÄTÖS
	Yksi selkeä lause.`))

var envelopePersonalizedSection = strings.TrimSpace(dedent.Dedent(`
	KÄYTTÄJÄN TERVEYSPROFIILI:
	- Paino: %.0f kg
	- Pituus: %.0f cm
	- Tavoite: %s
	- Laskettu päivittäinen energiantarve: %d kcal
	%s
	TUOTTEEN OCR-TEKSTI:
	"""
	%s
	"""

	KÄYTTÄJÄLLE NÄYTETTÄVÄ TEKSTI ("result"):

	👤 SINULLE SOPIVA MÄÄRÄ:
	- 🍽 Suositeltu annos: X g / ml
	- 🟢 / 🟡 / 🔴
	- 📆 Kuinka usein: X kertaa viikossa / päivässä

	📌 PERUSTELU:
	1–2 lausetta, joissa mainitaan käyttäjän tavoite ja aikaväli. Suhteuta annoksen energia prosentteina päivän energiantarpeesta.

	🎯 JOHTOPÄÄTÖS:
	Yksi selkeä ja suora lause.`))

// promptKey selects a template: one axis for evidence kind, one for whether
// a usable profile accompanies the request. Adding a modality or a
// personalization variant is a new table entry, not a new branch.
type promptKey struct {
	kind         EvidenceKind
	personalized bool
}

var promptTable = map[promptKey]func(Evidence, *Profile) llm.Prompt{
	{EvidenceImage, false}:   composeVision,
	{EvidenceImage, true}:    composeVision,
	{EvidenceOcrText, false}: composeGeneric,
	{EvidenceOcrText, true}:  composePersonalized,
}

// Compose selects and fills the prompt template for the given evidence and
// personalization state.
func Compose(evidence Evidence, profile *Profile) llm.Prompt {
	key := promptKey{kind: evidence.Kind, personalized: profile.Present()}
	return promptTable[key](evidence, profile)
}

func composeVision(evidence Evidence, _ *Profile) llm.Prompt {
	return llm.Prompt{Text: visionPrompt, ImageJPEG: evidence.ImageJPEG}
}

func composeGeneric(evidence Evidence, _ *Profile) llm.Prompt {
	section := fmt.Sprintf(envelopeGenericSection, evidence.Text)
	return llm.Prompt{Text: envelopeBasePrompt + "\n\n" + section}
}

func composePersonalized(evidence Evidence, profile *Profile) llm.Prompt {
	dailyNeed, _ := DailyEnergyNeed(profile)

	var targets strings.Builder
	if profile.TargetWeightKg > 0 {
		fmt.Fprintf(&targets, "- Tavoitepaino: %.0f kg\n", profile.TargetWeightKg)
	}
	if profile.TargetMuscleKg > 0 {
		fmt.Fprintf(&targets, "- Tavoite lihasmassa: %.0f kg\n", profile.TargetMuscleKg)
	}
	if profile.TimeframeMonths > 0 {
		fmt.Fprintf(&targets, "- Aikajänne: %.0f kuukautta\n", profile.TimeframeMonths)
	}

	section := fmt.Sprintf(envelopePersonalizedSection,
		profile.WeightKg, profile.HeightCm, profile.GoalLabel(), dailyNeed, targets.String(), evidence.Text)
	return llm.Prompt{Text: envelopeBasePrompt + "\n\n" + section}
}
