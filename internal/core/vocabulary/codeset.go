// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package vocabulary

import "github.com/taibuivan/skumaster/internal/core/skucode"

// Component returns the codec view of the row, or nil for a nil row.
func (attribute *Attribute) Component() *skucode.Component {
	if attribute == nil {
		return nil
	}
	return &skucode.Component{Code: attribute.Code, NumericCode: attribute.NumericCode}
}

// CodeSet assembles the codec input from resolved rows. Kinds absent from
// attributes are left empty so that [skucode.Encode] reports them.
func CodeSet(attributes map[Kind]*Attribute, designNo string) skucode.Set {
	return skucode.Set{
		Season:    attributes[KindSeason].Component(),
		Category:  attributes[KindCategory].Component(),
		Type:      attributes[KindType].Component(),
		DesignNo:  designNo,
		Fabric:    attributes[KindFabric].Component(),
		Color:     attributes[KindColor].Component(),
		Style:     attributes[KindStyle].Component(),
		PrintType: attributes[KindPrintType].Component(),
		Placement: attributes[KindPlacement].Component(),
		Supplier:  attributes[KindSupplier].Component(),
		Factory:   attributes[KindFactory].Component(),
		Size:      attributes[KindSize].Component(),
	}
}
