package model

// RankLabel là nhãn rank đã tách, ví dụ "Bạch Kim V 3 sao" → {Tier: "Bạch Kim V", Star: 3}
type RankLabel struct {
	Tier string `json:"tier"`
	Star int    `json:"star"`
}

// StarRange khoảng sao [Min, Max] của một bậc rank
type StarRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TierStarBounds bảng min/max sao theo từng bậc, dựng một lần từ rank_options.json
type TierStarBounds map[string]StarRange
