package scraper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The site paginates through a castle.cms query listing; page 1 is the
// plain listing URL, later pages go through this endpoint.
const querylistingPath = "/@@castle.cms.querylisting/f7f80a1681ac41a08266bd0920c9d9d8"

// ListingURL builds the URL for one page of the fugitives listing.
func ListingURL(baseURL string, page int) string {
	if page <= 1 {
		return baseURL
	}

	params := url.Values{}
	params.Set("display_fields", "('image',)")
	params.Set("sort_on", "modified")
	params.Set("available_tags", "(u'Crimes Against Children', u\"Cyber's Most Wanted\", u'White-Collar Crime', u'Counterintelligence', u'Human Trafficking', u'Criminal Enterprise Investigations', u'Violent Crime - Murders', u'Additional Violent Crimes')")
	params.Set("query.v:records", "[u'published']")
	params.Set("query.o:records", "plone.app.querystring.operation.selection.any")
	params.Set("query.i:records", "review_state")
	params.Set("limit", "40")
	params.Set("_layouteditor", "true")
	params.Set("display_type", "wanted-feature-grid")
	params.Set("page", strconv.Itoa(page))

	return strings.TrimRight(baseURL, "/") + querylistingPath + "?" + params.Encode()
}

// ExtractProfileURLs pulls the individual profile links out of a listing
// page. Each fugitive name on the grid is a <p class="name"> wrapping the
// profile link.
func ExtractProfileURLs(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	out := []string{}
	doc.Find("p.name a").Each(func(_ int, link *goquery.Selection) {
		if href, ok := link.Attr("href"); ok && strings.TrimSpace(href) != "" {
			out = append(out, strings.TrimSpace(href))
		}
	})
	return out
}
