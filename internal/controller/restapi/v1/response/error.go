package response

type Error struct {
	Kind    string `json:"kind" example:"Internal"`
	Message string `json:"message" example:"internal error"`
}
