package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table             string
	ID                string
	SeasonID          string
	CategoryID        string
	TypeID            string
	DesignNo          string
	FabricID          string
	ColorID           string
	StyleID           string
	PrintTypeID       string
	PlacementID       string
	SupplierID        string
	FactoryID         string
	SizeID            string
	ProductNameAr     string
	ProductNameEn     string
	MasterDesignCode  string
	SKUCode           string
	SKUCodedSegmented string
	SKUCodedCompact   string
	Notes             string
	CreatedAt         string
	UpdatedAt         string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:             "catalog.product",
	ID:                "id",
	SeasonID:          "seasonid",
	CategoryID:        "categoryid",
	TypeID:            "typeid",
	DesignNo:          "designno",
	FabricID:          "fabricid",
	ColorID:           "colorid",
	StyleID:           "styleid",
	PrintTypeID:       "printtypeid",
	PlacementID:       "placementid",
	SupplierID:        "supplierid",
	FactoryID:         "factoryid",
	SizeID:            "sizeid",
	ProductNameAr:     "productnamear",
	ProductNameEn:     "productnameen",
	MasterDesignCode:  "masterdesigncode",
	SKUCode:           "skucode",
	SKUCodedSegmented: "skucodedsegmented",
	SKUCodedCompact:   "skucodedcompact",
	Notes:             "notes",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.SeasonID, t.CategoryID, t.TypeID, t.DesignNo, t.FabricID, t.ColorID,
		t.StyleID, t.PrintTypeID, t.PlacementID, t.SupplierID, t.FactoryID, t.SizeID,
		t.ProductNameAr, t.ProductNameEn, t.MasterDesignCode, t.SKUCode,
		t.SKUCodedSegmented, t.SKUCodedCompact, t.Notes, t.CreatedAt, t.UpdatedAt,
	}
}
