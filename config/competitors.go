package config

import (
	"menuwatch/fetcher"
	"menuwatch/parsers"
)

// Competitor is one monitored menu source.
type Competitor struct {
	Name        string
	URL         string
	ParserKind  parsers.Kind
	FetchMode   fetcher.Mode
	WaitFor     string
	Active      bool
	IsReference bool
}

// Competitors lists the monitored sources. The reference source is
// processed first so its live prices can override the baseline table
// before any comparison happens.
var Competitors = []Competitor{
	{
		Name:        "Pollo Campero",
		URL:         "https://sv.campero.com",
		ParserKind:  parsers.KindCategoryPages,
		FetchMode:   fetcher.ModeRendered,
		Active:      true,
		IsReference: true,
	},
	{
		Name:       "KFC El Salvador",
		URL:        "https://www.kfc.com.sv/categorias",
		ParserKind: parsers.KindHeuristicHTML,
		FetchMode:  fetcher.ModeRendered,
		WaitFor:    "button",
		Active:     true,
	},
	{
		Name:       "Pollo Campestre",
		URL:        "https://api.pollocampestre.com.sv/v2/home/GetHomeConfiguration",
		ParserKind: parsers.KindMenuAPI,
		FetchMode:  fetcher.ModeStatic,
		Active:     true,
	},
}
