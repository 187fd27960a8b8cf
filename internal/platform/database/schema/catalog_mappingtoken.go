package schema

// CatalogMappingTokenTable represents the 'catalog.mappingtoken' table
type CatalogMappingTokenTable struct {
	Table         string
	ID            string
	Token         string
	NumericCode   string
	DescriptionAr string
	DescriptionEn string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogMappingToken is the schema definition for catalog.mappingtoken
var CatalogMappingToken = CatalogMappingTokenTable{
	Table:         "catalog.mappingtoken",
	ID:            "id",
	Token:         "token",
	NumericCode:   "numericcode",
	DescriptionAr: "descriptionar",
	DescriptionEn: "descriptionen",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CatalogMappingTokenTable) Columns() []string {
	return []string{t.ID, t.Token, t.NumericCode, t.DescriptionAr, t.DescriptionEn, t.CreatedAt, t.UpdatedAt}
}
