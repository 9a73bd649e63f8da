package request

// RFPRequest targets specific appraisers, or the auto-matched candidates
// when AppraiserIDs is empty.
type RFPRequest struct {
	AppraiserIDs []string `json:"appraiser_ids"`
	DryRun       bool     `json:"dry_run"`
}
