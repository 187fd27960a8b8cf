package schema

// CatalogNumericCodeSequenceTable represents the 'catalog.numericcodesequence' table
type CatalogNumericCodeSequenceTable struct {
	Table     string
	Kind      string
	LastValue string
	UpdatedAt string
}

// CatalogNumericCodeSequence is the schema definition for catalog.numericcodesequence
var CatalogNumericCodeSequence = CatalogNumericCodeSequenceTable{
	Table:     "catalog.numericcodesequence",
	Kind:      "kind",
	LastValue: "lastvalue",
	UpdatedAt: "updatedat",
}

func (t CatalogNumericCodeSequenceTable) Columns() []string {
	return []string{t.Kind, t.LastValue, t.UpdatedAt}
}
