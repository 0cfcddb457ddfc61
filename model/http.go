package model

type ParseRequestBody struct {
	Text string `json:"text"`
}

type EncodeRequestBody struct {
	Placements []Placement `json:"placements"`
	TotalSteps int         `json:"total_steps"`
}

type EncodeResponse struct {
	Text string `json:"text"`
}

type TabRequestBody struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
