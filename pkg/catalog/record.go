// Package catalog defines the canonical data model for the boxbluebook
// system: raw vendor records, canonical cigars, and the derived brand and
// line taxonomy. All types are plain values with JSON and YAML tags so
// artifacts can be written in either format.
package catalog

// Record represents one extracted line item as emitted by a vendor
// document adapter, before normalization. Every field except Source is
// optional; numeric fields use pointers so an absent value survives
// merging without being confused with zero.
type Record struct {
	Brand          string   `json:"brand,omitempty" yaml:"brand,omitempty"`                     // Manufacturer brand (e.g., "My Father")
	Line           string   `json:"line,omitempty" yaml:"line,omitempty"`                       // Product line (e.g., "Le Bijou 1922")
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`                       // Full cigar name
	Vitola         string   `json:"vitola,omitempty" yaml:"vitola,omitempty"`                   // Vitola name (e.g., "Robusto", "Toro")
	Size           string   `json:"size,omitempty" yaml:"size,omitempty"`                       // Size string (e.g., "5 x 50")
	Length         *float64 `json:"length,omitempty" yaml:"length,omitempty"`                   // Length in inches
	RingGauge      *int     `json:"ring_gauge,omitempty" yaml:"ring_gauge,omitempty"`           // Ring gauge (64ths of an inch)
	BoxCount       *int     `json:"box_count,omitempty" yaml:"box_count,omitempty"`             // Cigars per box
	WholesalePrice *float64 `json:"wholesale_price,omitempty" yaml:"wholesale_price,omitempty"` // Wholesale box price
	MSRPSingle     *float64 `json:"msrp_single,omitempty" yaml:"msrp_single,omitempty"`         // MSRP per cigar
	MSRPBox        *float64 `json:"msrp_box,omitempty" yaml:"msrp_box,omitempty"`               // MSRP per box
	Wrapper        string   `json:"wrapper,omitempty" yaml:"wrapper,omitempty"`                 // Wrapper type (if available)
	Country        string   `json:"country,omitempty" yaml:"country,omitempty"`                 // Country of origin
	UPC            string   `json:"upc,omitempty" yaml:"upc,omitempty"`                         // UPC code (if available)
	SKU            string   `json:"sku,omitempty" yaml:"sku,omitempty"`                         // Manufacturer SKU
	Source         string   `json:"source" yaml:"source"`                                      // Provenance tag (required)
}

// HasSizeData reports whether both resolved dimensions are present.
func (r *Record) HasSizeData() bool {
	return r.Length != nil && r.RingGauge != nil
}

// HasPriceData reports whether any retail price is present.
func (r *Record) HasPriceData() bool {
	return r.MSRPSingle != nil || r.MSRPBox != nil
}

// Float returns a pointer to the given float64 value.
// Convenience for building records in adapters and tests.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to the given int value.
func Int(v int) *int { return &v }
