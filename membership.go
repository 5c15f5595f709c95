package msigdump

import "strings"

// Membership holds the two comma-joined identifier lists extracted from a
// gene set's downloadable TSV.
type Membership struct {
	GeneSymbols   string
	SourceMembers string
}

// payloadFormat tags the two mutually exclusive TSV layouts. The file itself
// carries no format marker, so the layout is inferred from the first line.
type payloadFormat int

const (
	// formatRowBased: header line followed by one gene per row
	// (GENE_SYMBOL, GENE_ID, ...). Typical for microRNA sets.
	formatRowBased payloadFormat = iota
	// formatKeyValue: one field per line as "KEY\tvalue", where the values
	// of interest are already comma-joined. Typical for curated sets.
	formatKeyValue
)

// classifyPayload decides the layout from the first line, case-insensitively.
// Only a header naming both GENE_SYMBOL and GENE_ID marks a row-based file;
// everything else is treated as key-value.
func classifyPayload(firstLine string) payloadFormat {
	header := strings.ToLower(firstLine)
	if strings.Contains(header, "gene_symbol") && strings.Contains(header, "gene_id") {
		return formatRowBased
	}
	return formatKeyValue
}

// ParseMembership parses the raw text of a membership TSV in either layout.
// An empty payload yields an empty Membership without error. Note the
// asymmetry: row-based files contribute one value per line and are joined
// with commas here, while key-value files already carry the joined string
// and are copied verbatim.
func ParseMembership(text string) Membership {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Membership{}
	}

	lines := strings.Split(trimmed, "\n")
	if classifyPayload(lines[0]) == formatRowBased {
		return parseRowBased(lines[1:])
	}
	return parseKeyValue(lines)
}

// parseRowBased reads one gene per line, first column into symbols and
// second into source members. Lines with a single column contribute a symbol
// only; blank lines are skipped.
func parseRowBased(lines []string) Membership {
	var symbols, members []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		symbols = append(symbols, strings.TrimSpace(parts[0]))
		if len(parts) >= 2 {
			members = append(members, strings.TrimSpace(parts[1]))
		}
	}
	return Membership{
		GeneSymbols:   strings.Join(symbols, ","),
		SourceMembers: strings.Join(members, ","),
	}
}

// parseKeyValue reads "KEY\tvalue" lines, splitting on the first tab only
// because the values themselves contain commas, not tabs. Lines without a
// tab and keys other than GENE_SYMBOLS / SOURCE_MEMBERS are ignored.
func parseKeyValue(lines []string) Membership {
	var m Membership
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		value := strings.TrimSpace(parts[1])
		switch strings.TrimSpace(parts[0]) {
		case "GENE_SYMBOLS":
			m.GeneSymbols = value
		case "SOURCE_MEMBERS":
			m.SourceMembers = value
		}
	}
	return m
}
