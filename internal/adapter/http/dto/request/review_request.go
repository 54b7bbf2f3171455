package request

type FinalAdjustmentsRequest struct {
	LaborCost       float64 `json:"labor_cost"`
	MaterialsCost   float64 `json:"materials_cost"`
	AdditionalCosts float64 `json:"additional_costs"`
}

// ApprovalDecisionRequest resolves the pending completion approval. Approved
// is a pointer so an omitted field is distinguishable from an explicit false.
type ApprovalDecisionRequest struct {
	Approved    *bool                    `json:"approved" binding:"required"`
	Notes       string                   `json:"notes"`
	Adjustments *FinalAdjustmentsRequest `json:"adjustments"`
}
