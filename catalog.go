package msigdump

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BaseURL is the site root that detail-page and download hrefs are relative
// to.
const BaseURL = "https://www.gsea-msigdb.org/gsea/"

// ErrCatalogNotFound indicates the listing page has no gene-set table, so no
// records can be produced from it.
var ErrCatalogNotFound = errors.New("no table with id geneSetTable on listing page")

// CollectDetailLinks extracts every detail-page link from the gene-set table
// of a listing page, in document order. Duplicate links pass through; callers
// that want them removed dedupe explicitly. An empty slice means the catalog
// table exists but lists no gene sets.
func CollectDetailLinks(doc *goquery.Document) ([]string, error) {
	table := doc.Find("table#geneSetTable").First()
	if table.Length() == 0 {
		return nil, ErrCatalogNotFound
	}

	links := []string{}
	table.Find("td a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		links = append(links, absoluteURL(href))
	})

	return links, nil
}

// absoluteURL resolves a site-relative href against BaseURL. Hrefs that are
// already absolute pass through unchanged.
func absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return BaseURL + strings.TrimPrefix(href, "/")
}
