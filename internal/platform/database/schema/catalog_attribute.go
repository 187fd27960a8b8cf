package schema

// CatalogAttributeTable represents one of the eleven vocabulary tables in the 'catalog' schema.
// Every vocabulary shares these columns; HexValue and CategoryID are only present
// on 'catalog.color' and 'catalog.type' respectively.
type CatalogAttributeTable struct {
	Table       string
	ID          string
	Code        string
	NameAr      string
	NameEn      string
	NumericCode string
	HexValue    string
	CategoryID  string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogAttribute returns the schema definition for the vocabulary stored in table.
func CatalogAttribute(table string) CatalogAttributeTable {
	return CatalogAttributeTable{
		Table:       "catalog." + table,
		ID:          "id",
		Code:        "code",
		NameAr:      "namear",
		NameEn:      "nameen",
		NumericCode: "numericcode",
		HexValue:    "hexvalue",
		CategoryID:  "categoryid",
		CreatedAt:   "createdat",
		UpdatedAt:   "updatedat",
	}
}

func (t CatalogAttributeTable) Columns() []string {
	return []string{t.ID, t.Code, t.NameAr, t.NameEn, t.NumericCode, t.CreatedAt, t.UpdatedAt}
}
