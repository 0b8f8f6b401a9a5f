// Package brand resolves which of the two marketing brands a request belongs
// to and rewrites paths so one deployment serves both site trees.
package brand

import "strings"

const (
	KeyPierce     = "pierce"
	KeyRivercrest = "rivercrest"
)

// Brand describes one marketing site served by this deployment.
type Brand struct {
	Key  string
	Name string
	// Hosts are hostname substrings that select this brand.
	Hosts []string
	// PathPrefix is the page-tree prefix the secondary brand is served from.
	// Empty for the primary brand.
	PathPrefix string
	// SourceTag identifies this brand's traffic-citation submissions in the
	// case sheet; DUISourceTag does the same for DUI consultations.
	SourceTag    string
	DUISourceTag string
	// CheckoutBaseURL is the base for Stripe success/cancel redirects.
	CheckoutBaseURL string
	// FromEmail is the sender for this brand's transactional email.
	FromEmail string
}

// Registry holds the configured brands. The first entry is the primary brand
// and the fallback for unmatched hosts and source tags.
type Registry struct {
	brands []*Brand
}

// NewRegistry returns the production brand set.
func NewRegistry() *Registry {
	return &Registry{brands: []*Brand{
		{
			Key:             KeyPierce,
			Name:            "Pierce Defense Law",
			Hosts:           []string{"piercecountydefense.com"},
			SourceTag:       "PIERCE_DEFENSE_WEBSITE",
			DUISourceTag:    "PIERCE_DEFENSE_DUI",
			CheckoutBaseURL: "https://piercecountydefense.com",
			FromEmail:       "Pierce Defense Law <noreply@piercedefenselaw.com>",
		},
		{
			Key:             KeyRivercrest,
			Name:            "Rivercrest Law",
			Hosts:           []string{"defense.rivercrestlaw.com"},
			PathPrefix:      "/defense",
			SourceTag:       "SEATTLE_DEFENSE_WEBSITE",
			DUISourceTag:    "SEATTLE_DEFENSE_DUI",
			CheckoutBaseURL: "https://rivercrestlaw.com/defense",
			FromEmail:       "Rivercrest Law <noreply@rivercrestlaw.com>",
		},
	}}
}

// Primary returns the fallback brand.
func (r *Registry) Primary() *Brand {
	return r.brands[0]
}

// ByHost resolves a brand from a Host header, falling back to the primary.
// Matching is substring-based so ports and www prefixes don't matter.
func (r *Registry) ByHost(host string) *Brand {
	host = strings.ToLower(host)
	for _, b := range r.brands {
		for _, h := range b.Hosts {
			if strings.Contains(host, h) {
				return b
			}
		}
	}
	return r.Primary()
}

// ByKey resolves a brand by key, falling back to the primary.
func (r *Registry) ByKey(key string) *Brand {
	for _, b := range r.brands {
		if b.Key == key {
			return b
		}
	}
	return r.Primary()
}

// BySource resolves a brand from a submission source tag, falling back to the
// primary. Both the website and DUI tags select the brand.
func (r *Registry) BySource(tag string) *Brand {
	for _, b := range r.brands {
		if b.SourceTag == tag || b.DUISourceTag == tag {
			return b
		}
	}
	return r.Primary()
}
