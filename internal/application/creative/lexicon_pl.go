package creative

import (
	"text/template"

	"adcraft/internal/domain/campaign"
)

var defaultLexicon = polishLexicon()

// DefaultLexicon returns the built-in Polish lexicon. Callers must not
// modify it.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

func polishLexicon() *Lexicon {
	return &Lexicon{
		Voices: map[campaign.Tone]ToneVoice{
			campaign.TonePremium: {
				Adjectives: []string{"szlachetny", "ponadczasowy", "dopracowany w każdym detalu"},
				Imagery:    "Kameralne ujęcia tarasu o zmierzchu, miękkie światło podkreślające usłojenie drewna i ręcznie wykończone detale.",
				Palette:    []string{"grafit", "złamana biel", "ciepły orzech", "mosiądz"},
				Opening:    phrase("premium.opening", "{{.Brand}}: {{.Product}} dla tych, którzy wybierają klasę"),
				Question:   phrase("premium.question", "Czy wypoczynek może być prawdziwym luksusem? {{.Brand}} pokazuje, że tak."),
				Qualifier:  "Klasa premium",
				Keyword:    "premium",
				Tagline:    "Meble klasy premium",
			},
			campaign.ToneRustic: {
				Adjectives: []string{"naturalny", "ciepły", "z charakterem"},
				Imagery:    "Stół pełen sezonowych potraw, lniane obrusy i surowe drewno w promieniach popołudniowego słońca.",
				Palette:    []string{"miodowy dąb", "terakota", "len", "mech"},
				Opening:    phrase("rustic.opening", "{{.Brand}} przedstawia {{lcfirst .Product}} z duszą i naturalnym charakterem"),
				Question:   phrase("rustic.question", "Tęsknisz za ciepłem drewna i prostymi przyjemnościami? Zajrzyj do {{.Brand}}."),
				Qualifier:  "Naturalnie",
				Keyword:    "rustykalny",
				Tagline:    "Rustykalny styl z duszą",
			},
			campaign.ToneFamily: {
				Adjectives: []string{"bezpieczny", "wygodny", "stworzony do wspólnych chwil"},
				Imagery:    "Rodzinne śniadanie na tarasie, dzieci bawiące się w tle i zaokrąglone krawędzie mebli w kadrze.",
				Palette:    []string{"słoneczna żółć", "błękit nieba", "jasny buk", "biel"},
				Opening:    phrase("family.opening", "{{ucfirst .Product}} od {{.Brand}} na wspólne chwile całej rodziny"),
				Question:   phrase("family.question", "Gdzie Twoja rodzina spędzi najlepsze chwile tego lata? {{.Brand}} ma na to pomysł."),
				Qualifier:  "Dla całej rodziny",
				Keyword:    "rodzinny",
				Tagline:    "Komfort dla całej rodziny",
			},
			campaign.ToneEco: {
				Adjectives: []string{"zrównoważony", "odpowiedzialny", "z certyfikowanego drewna"},
				Imagery:    "Meble w otoczeniu bujnej zieleni, zbliżenia na certyfikowane drewno i naturalne faktury w rozproszonym świetle.",
				Palette:    []string{"szałwia", "piasek", "leśna zieleń", "naturalne drewno"},
				Opening:    phrase("eco.opening", "{{.Brand}}: {{.Product}} w zgodzie z naturą"),
				Question:   phrase("eco.question", "Czy piękny taras może być też przyjazny naturze? {{.Brand}} udowadnia, że tak."),
				Qualifier:  "Eko wybór",
				Keyword:    "eko",
				Tagline:    "Ekologiczny design na lata",
			},
			campaign.ToneEnergetic: {
				Adjectives: []string{"żywy", "odważny", "pełen wakacyjnej energii"},
				Imagery:    "Dynamiczne kadry z letniej imprezy w ogrodzie, nasycone kolory i ruch w każdym ujęciu.",
				Palette:    []string{"koral", "turkus", "limonka", "słoneczny pomarańcz"},
				Opening:    phrase("energetic.opening", "{{.Brand}} rozkręca sezon: {{.Product}}"),
				Question:   phrase("energetic.question", "Gotowi na najlepsze lato w ogrodzie? {{.Brand}} dodaje mu energii!"),
				Qualifier:  "Pełna energia",
				Keyword:    "energetyczny",
				Tagline:    "Kolorowe lato w ogrodzie",
			},
		},

		Goals: map[campaign.Goal]GoalFraming{
			campaign.GoalSale: {
				BodyClosing:    phrase("sale.closing", "Zamów już dziś i ciesz się nowym wyposażeniem od pierwszych ciepłych dni."),
				Urgency:        UrgencyHigh,
				SearchHeadline: "Zamów online już dziś",
			},
			campaign.GoalLeadGeneration: {
				BodyClosing:    phrase("lead.closing", "Umów bezpłatną konsultację z zespołem {{.Brand}} i zaplanuj przestrzeń skrojoną na miarę."),
				Urgency:        UrgencyMedium,
				SearchHeadline: "Bezpłatna konsultacja",
			},
			campaign.GoalAwareness: {
				BodyClosing:    phrase("awareness.closing", "Poznaj historię {{.Brand}} i zobacz, jak powstają nasze projekty."),
				Urgency:        UrgencyLow,
				SearchHeadline: "Poznaj naszą historię",
			},
		},

		CTAs: map[campaign.CTAStyle]*template.Template{
			campaign.CTAUrgent:        phrase("cta.urgent", "Zarezerwuj termin w {{.Brand}} już dziś, liczba realizacji w sezonie jest ograniczona!"),
			campaign.CTAInspirational: phrase("cta.inspirational", "Zaprojektuj z {{.Brand}} przestrzeń, w której zechcesz spędzać każdy wieczór."),
			campaign.CTAAdvisory:      phrase("cta.advisory", "Porozmawiaj z doradcą {{.Brand}} i dobierz {{lcfirst .Product}} do swojej przestrzeni."),
		},

		Hooks: map[campaign.Channel]string{
			campaign.ChannelSocial:     "Facebook/Instagram: karuzela realizacji i krótkie rolki pokazujące produkt w użyciu",
			campaign.ChannelSearch:     "Google Ads: frazy produktowe z lokalizacją i rozszerzenia z opiniami klientów",
			campaign.ChannelPinterest:  "Pinterest: tablice inspiracji z aranżacjami i pinami prowadzącymi do katalogu",
			campaign.ChannelNewsletter: "Newsletter: sekwencja z historią projektu i zaproszeniem do salonu",
		},

		Urgency: map[UrgencyLevel]*template.Template{
			UrgencyHigh:   phrase("urgency.high", "Oferta sezonowa kończy się wkrótce. Sprawdź {{lcfirst .Product}} w {{.Brand}}, zanim znikną z magazynu."),
			UrgencyMedium: phrase("urgency.medium", "Terminy konsultacji na ten sezon szybko się zapełniają. Zarezerwuj swój w {{.Brand}}."),
			UrgencyLow:    phrase("urgency.low", "Nowy sezon w {{.Brand}} właśnie się zaczyna. Zobacz, co przygotowaliśmy."),
		},

		Frames: Frames{
			Audience:         phrase("frame.audience", "Stworzyliśmy to z myślą o odbiorcach takich jak {{lcfirst .Audience}}."),
			AudienceFallback: "Stworzyliśmy to z myślą o wymagających klientach.",
			Pitch:            phrase("frame.pitch", "{{ucfirst .Product}} od {{.Brand}} to wybór {{.Adjectives}}."),
			Benefits:         phrase("frame.benefits", "Zyskujesz: {{.Benefits}}."),
			SupportPoint:     phrase("frame.support", "{{.Qualifier}}: {{lcfirst .Benefit}}"),
			BenefitHighlight: phrase("frame.highlight", "{{ucfirst .Benefit}}? W {{.Brand}} to standard, nie dodatek."),
			GenericHighlight: phrase("frame.highlight.generic", "Jakość na lata i {{.Adjective}} charakter: tak pracuje {{.Brand}}."),
			SeasonalSnippet:  phrase("frame.seasonal", "{{ucfirst .Seasonal}}: to dobry moment, by postawić na {{lcfirst .Product}} od {{.Brand}}."),
			HookLead:         phrase("frame.hook", "Priorytet kanałów: {{.Channels}}."),
			HookSeasonal:     phrase("frame.hook.seasonal", "Motyw sezonowy: {{.Seasonal}}."),
			FallbackHook:     "Kampania wielokanałowa: dopasuj kreacje do miejsc, w których Twoi klienci szukają inspiracji.",
			SearchFallback:   "Sprawdź ofertę online",
		},
	}
}
