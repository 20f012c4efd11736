package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"fugitives/internal"
	"fugitives/internal/util"
)

var spacesPattern = regexp.MustCompile(`\s+`)

// ExtractProfile parses one fugitive profile page into a RawProfile.
// Missing sections leave their fields nil; the description table is kept
// verbatim as label/value pairs.
func ExtractProfile(html, profileURL string) (internal.RawProfile, error) {
	profile := internal.RawProfile{
		URL:         profileURL,
		Category:    CategoryFromURL(profileURL),
		Description: map[string]string{},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return profile, err
	}

	if name := cleanText(doc.Find("h1.documentFirstHeading").First().Text()); name != "" {
		profile.Name = util.StringPtr(name)
	}
	if alias := cleanText(doc.Find("div.wanted-person-aliases p").First().Text()); alias != "" {
		profile.Alias = util.StringPtr(alias)
	}

	if src, ok := doc.Find("div.wanted-person-mug img").First().Attr("src"); ok && src != "" {
		large := strings.Replace(src, "/preview", "/large", 1)
		profile.ImageURL = util.StringPtr(large)
	}

	doc.Find("table.wanted-person-description tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSuffix(cleanText(cells.Eq(0).Text()), ":")
		value := cleanText(cells.Eq(1).Text())
		if key != "" {
			profile.Description[key] = value
		}
	})

	if remarks := cleanText(doc.Find("div.wanted-person-remarks p").First().Text()); remarks != "" {
		profile.Remarks = util.StringPtr(remarks)
	}
	if caution := cleanText(doc.Find("div.wanted-person-caution p").First().Text()); caution != "" {
		profile.Caution = util.StringPtr(caution)
	}
	if office := cleanText(doc.Find("p.field-office-list span.field-office a").First().Text()); office != "" {
		profile.FieldOffice = util.StringPtr(office)
	}

	return profile, nil
}

// CategoryFromURL derives the crime category from the path segment that
// follows "wanted" in the profile URL.
func CategoryFromURL(profileURL string) *string {
	parts := strings.Split(profileURL, "/")
	for i, part := range parts {
		if part == "wanted" && i+1 < len(parts) && parts[i+1] != "" {
			return util.StringPtr(parts[i+1])
		}
	}
	return nil
}

func cleanText(input string) string {
	return strings.TrimSpace(spacesPattern.ReplaceAllString(input, " "))
}
