package models

// Plan is a purchasable recharge offering. The backend stores plans in a
// document database, so records may carry either `_id` or `id`.
type Plan struct {
	MongoID     string   `json:"_id,omitempty"`
	ID          string   `json:"id,omitempty"`
	Operator    string   `json:"operator"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Validity    int      `json:"validity"`
	Data        string   `json:"data"`
	Category    string   `json:"category"`
	Benefits    []string `json:"benefits,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Identifier returns the backend id, preferring `_id` over `id`.
func (p Plan) Identifier() string {
	if p.MongoID != "" {
		return p.MongoID
	}
	return p.ID
}
