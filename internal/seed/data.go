// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import "github.com/taibuivan/skumaster/internal/core/vocabulary"

// row is one sample vocabulary entry.
type row struct {
	Code   string
	NameAr string
	NameEn string
	Hex    string
	// TokenEn overrides the English description of the matching mapping token.
	TokenEn string
}

// designs are the sample design numbers registered as mapping tokens only.
var designs = []string{"2001", "2002", "2003", "2004", "2005", "2006"}

var sampleRows = map[vocabulary.Kind][]row{
	vocabulary.KindSeason: {
		{Code: "S26", NameAr: "موسم صيف 26", NameEn: "Summer 26", TokenEn: "Summer Season 26"},
		{Code: "W26", NameAr: "موسم شتاء 26", NameEn: "Winter 26", TokenEn: "Winter Season 26"},
		{Code: "S27", NameAr: "موسم صيف 27", NameEn: "Summer 27", TokenEn: "Summer Season 27"},
	},
	vocabulary.KindCategory: {
		{Code: "TP", NameAr: "تيشيرتات / علوي", NameEn: "Tops"},
		{Code: "BT", NameAr: "بنطلونات / سفلي", NameEn: "Bottoms"},
		{Code: "ST", NameAr: "مجموعات", NameEn: "Sets"},
	},
	vocabulary.KindType: {
		{Code: "RTS", NameAr: "تيشيرت راوند", NameEn: "Round T-Shirt"},
		{Code: "HO", NameAr: "هودي", NameEn: "Hoodie"},
		{Code: "POL", NameAr: "بولو", NameEn: "Polo"},
		{Code: "SWT", NameAr: "سويت شيرت", NameEn: "Sweatshirt"},
		{Code: "JNS", NameAr: "بنطلون جينز", NameEn: "Jeans"},
		{Code: "JOG", NameAr: "جوجر", NameEn: "Jogger"},
	},
	vocabulary.KindFabric: {
		{Code: "MLT", NameAr: "ميلتون", NameEn: "Melton"},
		{Code: "JRS", NameAr: "جيرسي", NameEn: "Jersey"},
		{Code: "LNN", NameAr: "كتان", NameEn: "Linen"},
		{Code: "INT", NameAr: "إنترلوك", NameEn: "Interlock"},
		{Code: "DM", NameAr: "دنيم", NameEn: "Denim"},
	},
	vocabulary.KindColor: {
		{Code: "BLK", NameAr: "أسود", NameEn: "Black", Hex: "#000000"},
		{Code: "WHT", NameAr: "أبيض", NameEn: "White", Hex: "#FFFFFF"},
		{Code: "RED", NameAr: "أحمر", NameEn: "Red", Hex: "#FF0000"},
		{Code: "BLU", NameAr: "أزرق", NameEn: "Blue", Hex: "#0000FF"},
		{Code: "GRN", NameAr: "أخضر", NameEn: "Green", Hex: "#00FF00"},
		{Code: "GRY", NameAr: "رمادي", NameEn: "Gray", Hex: "#808080"},
	},
	vocabulary.KindStyle: {
		{Code: "ARB", NameAr: "عربي", NameEn: "Arabic"},
		{Code: "MIN", NameAr: "مينمال", NameEn: "Minimal"},
		{Code: "VNT", NameAr: "فينتاج", NameEn: "Vintage"},
		{Code: "FRH", NameAr: "فرنش", NameEn: "French"},
	},
	vocabulary.KindPrintType: {
		{Code: "NP", NameAr: "بدون طباعة", NameEn: "No Print"},
		{Code: "SLK", NameAr: "سيلك سكرين", NameEn: "Silk Screen"},
		{Code: "DTF", NameAr: "دي تي اف", NameEn: "DTF"},
		{Code: "RBR", NameAr: "رابر", NameEn: "Rubber"},
	},
	vocabulary.KindPlacement: {
		{Code: "MDF", NameAr: "منتصف الأمام", NameEn: "Mid Front"},
		{Code: "LPF", NameAr: "الأمام الأيسر", NameEn: "Left Front"},
		{Code: "RPF", NameAr: "الأمام الأيمن", NameEn: "Right Front"},
		{Code: "MDB", NameAr: "منتصف الخلف", NameEn: "Mid Back"},
		{Code: "LSL", NameAr: "الكم الأيسر", NameEn: "Left Sleeve"},
		{Code: "RSL", NameAr: "الكم الأيمن", NameEn: "Right Sleeve"},
	},
	vocabulary.KindSupplier: {
		{Code: "S1", NameAr: "مورد 1", NameEn: "Supplier 1"},
		{Code: "S2", NameAr: "مورد 2", NameEn: "Supplier 2"},
		{Code: "S3", NameAr: "مورد 3", NameEn: "Supplier 3"},
	},
	vocabulary.KindFactory: {
		{Code: "F1", NameAr: "مصنع 1", NameEn: "Factory 1"},
		{Code: "F2", NameAr: "مصنع 2", NameEn: "Factory 2"},
		{Code: "F3", NameAr: "مصنع 3", NameEn: "Factory 3"},
	},
	vocabulary.KindSize: {
		{Code: "S", NameAr: "صغير", NameEn: "Small"},
		{Code: "M", NameAr: "وسط", NameEn: "Medium"},
		{Code: "L", NameAr: "كبير", NameEn: "Large"},
		{Code: "XL", NameAr: "إكس لارج", NameEn: "Extra Large"},
		{Code: "XXL", NameAr: "دبل إكس لارج", NameEn: "Double XL"},
	},
}
