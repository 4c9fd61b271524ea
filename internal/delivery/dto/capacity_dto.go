package dto

// CapacityResponse describes how much reception capacity a provider has
// left for a day. Count fields are omitted for open-reception providers.
type CapacityResponse struct {
	Open      bool   `json:"open"`
	Capacity  *int64 `json:"capacity,omitempty"`
	Used      *int64 `json:"used,omitempty"`
	Remaining *int64 `json:"remaining,omitempty"`
}
