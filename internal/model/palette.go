package model

// Palette holds the chart colors per metric. It is configuration data and is
// passed by value into every chart preparation call.
type Palette struct {
	Generation    string `yaml:"generation" json:"generation"`
	Price         string `yaml:"price" json:"price"`
	PriceDayAhead string `yaml:"price_da" json:"price_da"`
	Revenue       string `yaml:"revenue" json:"revenue"`
}

func DefaultPalette() Palette {
	return Palette{
		Generation:    "#70AD47",
		Price:         "#4472C4",
		PriceDayAhead: "#ED7D31",
		Revenue:       "#ED7D31",
	}
}

func (p Palette) Color(m Metric) string {
	switch m {
	case MetricGeneration:
		return p.Generation
	case MetricPrice:
		return p.Price
	case MetricPriceDayAhead:
		return p.PriceDayAhead
	case MetricRevenue:
		return p.Revenue
	}
	return ""
}
