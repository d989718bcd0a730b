package types

// BriefingData is the normalized generation input. Every field is guaranteed
// non-empty after extraction: a missed field receives its default instead of
// producing an error, so document assembly is never blocked on missing input.
type BriefingData struct {
	CompanyName    string   `json:"companyName"`
	BusinessType   string   `json:"businessType"` // lower-cased free text, matched by substring
	Description    string   `json:"description"`
	Services       []string `json:"services"`
	City           string   `json:"city"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Address        string   `json:"address"`
	Goal           string   `json:"goal,omitempty"`
	SpecialOffers  string   `json:"specialOffers,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty"`
}

// Section type tags, assigned positionally on import.
const (
	SectionIntro      = "intro"
	SectionMotivation = "motivation"
	SectionTarget     = "target"
	SectionMethod     = "method"
	SectionResults    = "results"
	SectionAccess     = "access"
	SectionInvestment = "investment"
)

// SectionTypeOrder maps heading position to a semantic tag; positions past
// the end of the list all map to the last entry.
var SectionTypeOrder = []string{
	SectionIntro, SectionMotivation, SectionTarget,
	SectionMethod, SectionResults, SectionAccess, SectionInvestment,
}

// SectionTypeAt returns the tag for the i-th imported heading.
func SectionTypeAt(i int) string {
	if i >= len(SectionTypeOrder) {
		return SectionTypeOrder[len(SectionTypeOrder)-1]
	}
	return SectionTypeOrder[i]
}

type BusinessSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// ImageDescriptions holds human-readable captions for the eight fixed image
// slots. Actual URLs live only in BusinessContent.CustomImages, keyed by the
// same slot names.
type ImageDescriptions struct {
	Logo       string `json:"logo"`
	Hero       string `json:"hero"`
	Motivation string `json:"motivation"`
	Target     string `json:"target"`
	Method     string `json:"method"`
	Results    string `json:"results"`
	Access     string `json:"access"`
	Investment string `json:"investment"`
}

// ImageSlotOrder is the fixed slot table used when pairing document images
// with slots by position.
var ImageSlotOrder = []string{
	"logo", "hero", "motivation", "target",
	"method", "results", "access", "investment",
}

type ContactInfo struct {
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	SocialMedia map[string]string `json:"socialMedia"`
}

type SellerbotResponses struct {
	Greeting    string `json:"greeting"`
	Services    string `json:"services"`
	Pricing     string `json:"pricing"`
	Appointment string `json:"appointment"`
}

type SellerbotMediaImage struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	Title       string `json:"title,omitempty"`
}

type SellerbotMediaLink struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SellerbotMedia struct {
	Images []SellerbotMediaImage `json:"images"`
	Links  []SellerbotMediaLink  `json:"links"`
}

// SellerbotConfig drives the embedded chat persona.
type SellerbotConfig struct {
	Name         string             `json:"name"`
	Personality  string             `json:"personality"`
	Knowledge    []string           `json:"knowledge"`
	Prohibitions string             `json:"prohibitions,omitempty"`
	Responses    SellerbotResponses `json:"responses"`
	Media        *SellerbotMedia    `json:"media,omitempty"`
}

type SEOData struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Keywords       string `json:"keywords"`
	CanonicalURL   string `json:"canonicalUrl"`
	OGTitle        string `json:"ogTitle"`
	OGDescription  string `json:"ogDescription"`
	OGImage        string `json:"ogImage"`
	TwitterTitle   string `json:"twitterTitle"`
	TwitterImage   string `json:"twitterImage"`
	StructuredData string `json:"structuredData"`
}

// BusinessContent is the structured record behind a generated or imported
// document. It is rebuilt fresh on every generation; the HTML string is the
// only durable artifact.
type BusinessContent struct {
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle"`
	HeroText     string            `json:"heroText"`
	CTAText      string            `json:"ctaText"`
	Sections     []BusinessSection `json:"sections"`
	Colors       ColorScheme       `json:"colors"`
	Images       ImageDescriptions `json:"images"`
	CustomImages map[string]string `json:"customImages,omitempty"`
	Contact      ContactInfo       `json:"contact"`
	Sellerbot    SellerbotConfig   `json:"sellerbot"`
	SEO          *SEOData          `json:"seo,omitempty"`
}

// ServiceCard is one entry in the services grid.
type ServiceCard struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Text        string `json:"text"`
	ImagePrompt string `json:"imagePrompt"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PresentationBundle is the fixed set of colors, images and copy banks
// associated with one business category. Lookup is pure and deterministic.
type PresentationBundle struct {
	Category      string        `json:"category"`
	Colors        ColorScheme   `json:"colors"`
	HeroImageURL  string        `json:"heroImageUrl"`
	AboutImageURL string        `json:"aboutImageUrl"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	HeroText      string        `json:"heroText"`
	AboutText     string        `json:"aboutText"`
	Services      []ServiceCard `json:"services"`
	Testimonials  []Testimonial `json:"testimonials"`
	FAQ           []FAQEntry    `json:"faq"`
}

// PromptAnalysis is the structured result of the remote prompt analysis.
type PromptAnalysis struct {
	BusinessType string        `json:"businessType"`
	CompanyName  string        `json:"companyName"`
	Colors       ColorScheme   `json:"colors"`
	Sections     []SectionPlan `json:"sections"`
	Keywords     []string      `json:"keywords"`
	Target       string        `json:"target"`
	Style        string        `json:"style"`
	Location     string        `json:"location,omitempty"`
}

type SectionPlan struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // hero | two-columns | centered | bg-image
	Description string `json:"description"`
}

// GeneratedSection is one unit of remotely generated marketing copy.
type GeneratedSection struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	ImagePrompt string `json:"imagePrompt,omitempty"`
}

// GeneratedCopy groups the AI-enriched section copy substituted into the
// document in place of catalog defaults.
type GeneratedCopy struct {
	Sections []GeneratedSection `json:"sections"`
}

// ImageMap keys generated image data URLs by slot name ("hero", "about",
// "section_2", ...). Completion order of the batch does not matter because
// every result is keyed.
type ImageMap map[string]string
