package request

// EngagementRequest accepts either an explicit winning quote or Auto to take
// the top-ranked one.
type EngagementRequest struct {
	QuoteID string `json:"quote_id"`
	Auto    bool   `json:"auto"`
	DryRun  bool   `json:"dry_run"`
}
