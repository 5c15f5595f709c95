package msigdump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseMembership_RowBased verifies the row-per-gene layout is joined
// with commas
func TestParseMembership_RowBased(t *testing.T) {
	payload := "GENE_SYMBOL\tGENE_ID\nTP53\t7157\nMYC\t4609\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TP53,MYC", m.GeneSymbols)
	assert.Equal(t, "7157,4609", m.SourceMembers)
}

// TestParseMembership_KeyValue verifies key-value payloads are copied
// verbatim, without re-splitting or re-joining
func TestParseMembership_KeyValue(t *testing.T) {
	payload := "GENE_SYMBOLS\tTSPAN1,MPZL2\nSOURCE_MEMBERS\t10103,10205\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TSPAN1,MPZL2", m.GeneSymbols)
	assert.Equal(t, "10103,10205", m.SourceMembers)
}

// TestParseMembership_Empty verifies an empty payload yields empty fields
// without error
func TestParseMembership_Empty(t *testing.T) {
	assert.Equal(t, Membership{}, ParseMembership(""))
	assert.Equal(t, Membership{}, ParseMembership("\n\n  \n"))
}

// TestParseMembership_SniffingIsCaseInsensitive verifies header detection
// ignores case
func TestParseMembership_SniffingIsCaseInsensitive(t *testing.T) {
	payload := "Gene_Symbol\tGene_ID\nBRCA1\t672\n"

	m := ParseMembership(payload)

	assert.Equal(t, "BRCA1", m.GeneSymbols)
	assert.Equal(t, "672", m.SourceMembers)
}

// TestParseMembership_RowBasedSingleColumn verifies lines with one column
// contribute a symbol but no source member
func TestParseMembership_RowBasedSingleColumn(t *testing.T) {
	payload := "GENE_SYMBOL\tGENE_ID\nTP53\t7157\nMYC\nKRAS\t3845\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TP53,MYC,KRAS", m.GeneSymbols)
	assert.Equal(t, "7157,3845", m.SourceMembers)
}

// TestParseMembership_RowBasedSkipsBlankLines verifies blank lines inside a
// row-based payload are ignored
func TestParseMembership_RowBasedSkipsBlankLines(t *testing.T) {
	payload := "GENE_SYMBOL\tGENE_ID\nTP53\t7157\n\n   \nMYC\t4609\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TP53,MYC", m.GeneSymbols)
	assert.Equal(t, "7157,4609", m.SourceMembers)
}

// TestParseMembership_RowBasedTrimsWhitespace verifies CRLF endings and
// padding are trimmed from both columns
func TestParseMembership_RowBasedTrimsWhitespace(t *testing.T) {
	payload := "GENE_SYMBOL\tGENE_ID\r\n TP53 \t 7157 \r\nMYC\t4609\r\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TP53,MYC", m.GeneSymbols)
	assert.Equal(t, "7157,4609", m.SourceMembers)
}

// TestParseMembership_KeyValueIgnoresOtherKeys verifies only the two known
// keys are extracted from a key-value payload
func TestParseMembership_KeyValueIgnoresOtherKeys(t *testing.T) {
	payload := "STANDARD_NAME\tABC_PATHWAY\n" +
		"GENE_SYMBOLS\tTSPAN1,MPZL2\n" +
		"DESCRIPTION_BRIEF\tGenes involved in something.\n" +
		"SOURCE_MEMBERS\t10103,10205\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TSPAN1,MPZL2", m.GeneSymbols)
	assert.Equal(t, "10103,10205", m.SourceMembers)
}

// TestParseMembership_KeyValueSkipsTablessLines verifies lines without a tab
// are skipped silently
func TestParseMembership_KeyValueSkipsTablessLines(t *testing.T) {
	payload := "this line has no tab\nGENE_SYMBOLS\tTP53,MYC\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TP53,MYC", m.GeneSymbols)
	assert.Empty(t, m.SourceMembers)
}

// TestParseMembership_KeyValueSplitsOnFirstTabOnly verifies the value keeps
// any tabs past the first
func TestParseMembership_KeyValueSplitsOnFirstTabOnly(t *testing.T) {
	payload := "GENE_SYMBOLS\tTP53\tMYC\n"

	m := ParseMembership(payload)

	assert.Equal(t, "TP53\tMYC", m.GeneSymbols)
}

// TestClassifyPayload verifies the format decision needs both header tokens
func TestClassifyPayload(t *testing.T) {
	assert.Equal(t, formatRowBased, classifyPayload("GENE_SYMBOL\tGENE_ID\tDESCRIPTION"))
	assert.Equal(t, formatRowBased, classifyPayload("gene_symbol\tgene_id"))
	assert.Equal(t, formatKeyValue, classifyPayload("GENE_SYMBOLS\tTP53,MYC"), "GENE_SYMBOLS alone lacks gene_id")
	assert.Equal(t, formatKeyValue, classifyPayload("STANDARD_NAME\tABC"))
	assert.Equal(t, formatKeyValue, classifyPayload(""))
}
