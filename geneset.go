package msigdump

import (
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// "Contributed by" values are usually "Name (Organization)". Greedy
	// groups so only the last parenthesized chunk counts as the
	// organization.
	contributorPattern = regexp.MustCompile(`(.*)\((.*)\)`)

	// Download link for the per-set membership TSV.
	membershipHrefPattern = regexp.MustCompile(`download_geneset\.jsp.*fileType=TSV`)
)

// attributeRule maps a label substring (already lower-cased) to the record
// fields it populates. Rules are tested in order and the first match wins,
// so broader substrings must come after narrower ones.
type attributeRule struct {
	substr string
	alt    string // optional second substring, matched the same way
	apply  func(rec *Record, cell *goquery.Selection, value string)
}

func (ar attributeRule) matches(label string) bool {
	if strings.Contains(label, ar.substr) {
		return true
	}
	return ar.alt != "" && strings.Contains(label, ar.alt)
}

var attributeRules = []attributeRule{
	{substr: "standard name", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.StandardName = value
	}},
	{substr: "systematic name", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.SystematicName = value
	}},
	{substr: "collection", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.Collection = strings.ReplaceAll(value, "\n", " ")
	}},
	{substr: "identifier namespace", alt: "source platform", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.Namespace = value
	}},
	{substr: "brief description", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.DescriptionBrief = value
	}},
	{substr: "full description", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.DescriptionFull = value
	}},
	{substr: "source publication", apply: func(rec *Record, cell *goquery.Selection, value string) {
		// The cell usually holds a Pubmed link plus an "Authors: ..."
		// citation blob; both parts are optional.
		link := cell.Find(`a[href*="pubmed"]`).First()
		if link.Length() > 0 {
			pmid := strings.TrimSpace(link.Text())
			pmid = strings.ReplaceAll(pmid, "Pubmed", "")
			rec.PMID = strings.TrimSpace(pmid)
		}
		if idx := strings.Index(strings.ToLower(value), "authors:"); idx != -1 {
			rec.Authors = strings.TrimSpace(value[idx+len("authors:"):])
		}
	}},
	{substr: "exact source", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.ExactSource = value
	}},
	{substr: "filtered by similarity", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.FilteredBySimilarity = value
	}},
	{substr: "external links", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.ExternalDetailsURL = value
	}},
	{substr: "contributed by", apply: func(rec *Record, _ *goquery.Selection, value string) {
		if m := contributorPattern.FindStringSubmatch(value); m != nil {
			rec.Contributor = strings.TrimSpace(m[1])
			rec.ContributorOrg = strings.TrimSpace(m[2])
		} else {
			rec.Contributor = value
		}
	}},
	{substr: "founder", apply: func(rec *Record, _ *goquery.Selection, value string) {
		rec.FounderNames = value
	}},
}

// ExtractRecord reads the attribute table of a gene-set detail page into a
// Record. The record always carries detailURL; every other field stays empty
// unless a table row's label matches one of the known rules. A detail page
// without the attribute table yields a record with only the URL set.
func ExtractRecord(doc *goquery.Document, detailURL string) Record {
	rec := Record{MSigDBURL: detailURL}

	table := doc.Find("table.lists4.human").First()
	if table.Length() == 0 {
		log.Printf("WARNING: no attribute table on %s, skipping metadata extraction", detailURL)
		return rec
	}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}

		label := strings.ToLower(strings.TrimSpace(th.Text()))
		value := cellText(td)

		for _, rule := range attributeRules {
			if rule.matches(label) {
				rule.apply(&rec, td, value)
				return
			}
		}
		// Unknown labels are dropped silently.
	})

	return rec
}

// ResolveMembershipURL finds the membership-TSV download link on a detail
// page. The second return value is false when the page has no such link,
// which is legitimate for some gene sets.
func ResolveMembershipURL(doc *goquery.Document) (string, bool) {
	var found string
	doc.Find(`a[href*="download_geneset.jsp"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if membershipHrefPattern.MatchString(href) {
			found = absoluteURL(href)
			return false
		}
		return true
	})
	return found, found != ""
}

// cellText returns all text inside the selection with each text node
// separated by a single space, so <br> and nested elements become word
// breaks instead of gluing words together.
func cellText(s *goquery.Selection) string {
	var parts []string
	for _, node := range s.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, strings.Fields(n.Data)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
