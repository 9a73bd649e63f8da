package request

type QuoteRequest struct {
	AppraiserID    string  `json:"appraiser_id"`
	Fee            float64 `json:"fee"`
	TurnaroundDays int     `json:"turnaround_days"`
	Notes          string  `json:"notes"`
}

type SummarySendRequest struct {
	DryRun bool `json:"dry_run"`
}
