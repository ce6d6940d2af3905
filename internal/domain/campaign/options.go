package campaign

// Option is one entry of a closed option list shown by a brief editor
type Option struct {
	Value       string `json:"value" yaml:"value"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// OptionSet groups the option lists of every enumeration in a brief
type OptionSet struct {
	Tones     []Option `json:"tones"`
	Goals     []Option `json:"goals"`
	Channels  []Option `json:"channels"`
	CTAStyles []Option `json:"ctaStyles"`
}

var toneOptions = map[Tone]Option{
	TonePremium:   {Label: "Premium", Description: "Szlachetne drewno, ekskluzywne wykończenie."},
	ToneRustic:    {Label: "Rustykalny", Description: "Naturalny charakter, ciepłe tekstury."},
	ToneFamily:    {Label: "Rodzinny", Description: "Komfort i bezpieczeństwo dla całej rodziny."},
	ToneEco:       {Label: "Eko", Description: "Zrównoważony design, materiały z certyfikatami."},
	ToneEnergetic: {Label: "Energetyczny", Description: "Żywe kolory, wakacyjna energia."},
}

var goalOptions = map[Goal]Option{
	GoalSale:           {Label: "Natychmiastowa sprzedaż"},
	GoalLeadGeneration: {Label: "Pozyskiwanie leadów"},
	GoalAwareness:      {Label: "Budowanie świadomości"},
}

var channelOptions = map[Channel]Option{
	ChannelSocial:     {Label: "Facebook / Instagram"},
	ChannelSearch:     {Label: "Google Ads"},
	ChannelPinterest:  {Label: "Pinterest"},
	ChannelNewsletter: {Label: "Newsletter"},
}

var ctaOptions = map[CTAStyle]Option{
	CTAUrgent:        {Label: "Pilne (FOMO)"},
	CTAInspirational: {Label: "Inspirujące"},
	CTAAdvisory:      {Label: "Doradzające"},
}

// Label returns the display label of the tone
func (t Tone) Label() string { return toneOptions[t].Label }

// Label returns the display label of the goal
func (g Goal) Label() string { return goalOptions[g].Label }

// Label returns the display label of the CTA style
func (s CTAStyle) Label() string { return ctaOptions[s].Label }

// Label returns the display label of the channel
func (c Channel) Label() string { return channelOptions[c].Label }

// Options returns the option lists in canonical order. Each call returns
// fresh slices.
func Options() OptionSet {
	set := OptionSet{}
	for _, t := range Tones() {
		set.Tones = append(set.Tones, withValue(toneOptions[t], string(t)))
	}
	for _, g := range Goals() {
		set.Goals = append(set.Goals, withValue(goalOptions[g], string(g)))
	}
	for _, c := range Channels() {
		set.Channels = append(set.Channels, withValue(channelOptions[c], string(c)))
	}
	for _, s := range CTAStyles() {
		set.CTAStyles = append(set.CTAStyles, withValue(ctaOptions[s], string(s)))
	}
	return set
}

func withValue(o Option, value string) Option {
	o.Value = value
	return o
}
