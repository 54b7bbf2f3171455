package entities

// MaterialCategory is a small fixed vocabulary for consumed materials.

type MaterialCategory string

const (
	MaterialCategoryParts       MaterialCategory = "parts"
	MaterialCategoryFluids      MaterialCategory = "fluids"
	MaterialCategoryTools       MaterialCategory = "tools"
	MaterialCategoryConsumables MaterialCategory = "consumables"
	MaterialCategoryOther       MaterialCategory = "other"
)

func (c MaterialCategory) Valid() bool {
	switch c {
	case MaterialCategoryParts, MaterialCategoryFluids, MaterialCategoryTools,
		MaterialCategoryConsumables, MaterialCategoryOther:
		return true
	}
	return false
}

// MaterialEntry is a priced, quantified part or consumable used on a job card.
//
// TotalPrice is always quantity times unit price; Reprice must be called when
// either factor changes.
type MaterialEntry struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	PartNumber string           `json:"part_number,omitempty"`
	Quantity   int              `json:"quantity"`
	UnitPrice  float64          `json:"unit_price"`
	TotalPrice float64          `json:"total_price"`
	Category   MaterialCategory `json:"category"`
}

// Reprice recomputes TotalPrice from quantity and unit price.
func (m *MaterialEntry) Reprice() {
	m.TotalPrice = float64(m.Quantity) * m.UnitPrice
}
