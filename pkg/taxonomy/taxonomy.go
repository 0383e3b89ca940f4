// Package taxonomy derives the brand → line hierarchy from a deduplicated
// catalog. Aggregates are created lazily on first sighting and only ever
// enriched: counts increment, a brand's country backfills once, and
// nothing is deleted or reordered after admission.
package taxonomy

import (
	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/identity"
)

// Build walks the deduplicated cigars in input order and produces the
// Brand and Line collections in first-sighting order.
//
// A cigar with an empty normalized brand contributes nothing to the
// taxonomy (it stays in the product catalog). A cigar without a line
// counts toward its brand but produces no Line entity.
func Build(cigars []catalog.Cigar) ([]catalog.Brand, []catalog.Line) {
	brands := make(map[string]*catalog.Brand)
	lines := make(map[string]*catalog.Line)
	var brandOrder, lineOrder []string

	for i := range cigars {
		cigar := &cigars[i]
		if cigar.Brand == "" {
			continue
		}

		brandSlug := identity.Slug(cigar.Brand)
		brand, ok := brands[brandSlug]
		if !ok {
			brand = &catalog.Brand{
				ID:      brandSlug,
				Name:    cigar.Brand,
				Slug:    brandSlug,
				Country: cigar.Country,
				Lines:   []string{},
			}
			brands[brandSlug] = brand
			brandOrder = append(brandOrder, brandSlug)
		}

		brand.CigarCount++
		if brand.Country == "" && cigar.Country != "" {
			brand.Country = cigar.Country
		}

		if cigar.Line == "" {
			continue
		}

		lineSlug := identity.LineSlug(brandSlug, cigar.Line)
		line, ok := lines[lineSlug]
		if !ok {
			line = &catalog.Line{
				ID:        lineSlug,
				Name:      cigar.Line,
				Slug:      lineSlug,
				BrandID:   brandSlug,
				BrandName: brand.Name,
			}
			lines[lineSlug] = line
			lineOrder = append(lineOrder, lineSlug)
		}
		line.CigarCount++
		brand.AddLine(lineSlug)
	}

	brandList := make([]catalog.Brand, 0, len(brandOrder))
	for _, slug := range brandOrder {
		brandList = append(brandList, *brands[slug])
	}
	lineList := make([]catalog.Line, 0, len(lineOrder))
	for _, slug := range lineOrder {
		lineList = append(lineList, *lines[slug])
	}
	return brandList, lineList
}
