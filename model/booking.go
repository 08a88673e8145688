package model

import "time"

type Booking struct {
	ID              int64     `json:"id"`         // timestamp (ms) lúc tạo, dùng làm định danh
	PublicCode      string    `json:"publicCode"` // Mã công khai (ví dụ: BK-nguyen-van-a-1a2b3c4d)
	Kind            string    `json:"kind"`       // "slot" hoặc "rank"
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	Date            string    `json:"date,omitempty"`     // YYYY-MM-DD
	Time            string    `json:"time,omitempty"`     // nhãn ca, ví dụ "Ca 7g Sáng"
	Duration        int       `json:"duration,omitempty"` // số tiếng
	Description     string    `json:"description"`
	Voucher         string    `json:"voucher,omitempty"`
	Price           string    `json:"price"`  // chuỗi hiển thị đã định dạng VND
	Status          string    `json:"status"` // pending, paid
	StartTime       string    `json:"startTime,omitempty"`
	EndTime         string    `json:"endTime,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	// Thông tin đơn cày rank (chỉ có khi Kind == "rank")
	RankType    string `json:"rankType,omitempty"`
	CurrentRank string `json:"currentRank,omitempty"`
	TargetRank  string `json:"targetRank,omitempty"`
	AccHandling string `json:"accHandling,omitempty"`
}

type CreateSlotInput struct {
	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Duration        int    `json:"duration" validate:"omitempty,min=1,max=24"`
	Description     string `json:"description"`
	Voucher         string `json:"voucher"`
}

type CreateRankInput struct {
	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
	RankType        string `json:"rankType"`
	CurrentRank     string `json:"currentRank"`
	TargetRank      string `json:"targetRank"`
	AccHandling     string `json:"accHandling"`
	Voucher         string `json:"voucher"`
	Note            string `json:"note"`
}

type PayInput struct {
	CustomerName    string `json:"customerName"`
	CustomerContact string `json:"customerContact"`
}

type SlotQuoteInput struct {
	Duration int    `json:"duration" validate:"omitempty,min=0,max=24"`
	Voucher  string `json:"voucher"`
}
