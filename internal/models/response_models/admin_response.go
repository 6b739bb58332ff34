package response_models

type JanitorRunResponse struct {
	PurgedMessages int64    `json:"purged_messages"`
	SweptEntries   int      `json:"swept_cache_entries"`
	Errors         []string `json:"errors,omitempty"`
}
