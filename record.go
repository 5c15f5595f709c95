package msigdump

// Record is one normalized gene set: the fixed 19-column row written to the
// output TSV. Every field is a string and defaults to empty; MSigDBURL is
// always populated because it is the detail-page location that produced the
// record, not a scraped value.
type Record struct {
	StandardName                 string
	SystematicName               string
	Collection                   string
	MSigDBURL                    string
	Namespace                    string
	DescriptionBrief             string
	DescriptionFull              string
	PMID                         string
	GEOID                        string
	Authors                      string
	Contributor                  string
	ContributorOrg               string
	ExactSource                  string
	FilteredBySimilarity         string
	ExternalNamesForSimilarTerms string
	ExternalDetailsURL           string
	SourceMembers                string
	GeneSymbols                  string
	FounderNames                 string
}

// fieldNames is the output column order. GEOID and
// EXTERNAL_NAMES_FOR_SIMILAR_TERMS have no source on current detail pages;
// they are kept as reserved columns so the schema stays stable.
var fieldNames = []string{
	"STANDARD_NAME",
	"SYSTEMATIC_NAME",
	"COLLECTION",
	"MSIGDB_URL",
	"NAMESPACE",
	"DESCRIPTION_BRIEF",
	"DESCRIPTION_FULL",
	"PMID",
	"GEOID",
	"AUTHORS",
	"CONTRIBUTOR",
	"CONTRIBUTOR_ORG",
	"EXACT_SOURCE",
	"FILTERED_BY_SIMILARITY",
	"EXTERNAL_NAMES_FOR_SIMILAR_TERMS",
	"EXTERNAL_DETAILS_URL",
	"SOURCE_MEMBERS",
	"GENE_SYMBOLS",
	"FOUNDER_NAMES",
}

// FieldNames returns the fixed output column order.
func FieldNames() []string {
	names := make([]string, len(fieldNames))
	copy(names, fieldNames)
	return names
}

// Values returns the record's fields in FieldNames order.
func (r Record) Values() []string {
	return []string{
		r.StandardName,
		r.SystematicName,
		r.Collection,
		r.MSigDBURL,
		r.Namespace,
		r.DescriptionBrief,
		r.DescriptionFull,
		r.PMID,
		r.GEOID,
		r.Authors,
		r.Contributor,
		r.ContributorOrg,
		r.ExactSource,
		r.FilteredBySimilarity,
		r.ExternalNamesForSimilarTerms,
		r.ExternalDetailsURL,
		r.SourceMembers,
		r.GeneSymbols,
		r.FounderNames,
	}
}
