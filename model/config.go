package model

import "encoding/json"

type AppConfig struct {
	Telegram  TelegramConfig     `json:"telegram"`
	Pricing   PricingConfig      `json:"pricing"`
	TimeSlots []TimeSlot         `json:"timeSlots"`
	Vouchers  map[string]Voucher `json:"vouchers"`
	Banking   BankInfo           `json:"banking"`
}

// TelegramConfig: token và chat id được che bằng XOR+Base64 trong config.json.
// Đây chỉ là che mắt thường, không phải mã hóa bảo mật.
type TelegramConfig struct {
	BotTokenEnc string `json:"botTokenEnc"`
	ChatIdEnc   string `json:"chatIdEnc"`
	BotToken    string `json:"-"` // đã giải mã, không bao giờ serialize ra ngoài
	ChatId      string `json:"-"`
}

type PricingConfig struct {
	SlotPricePerHour    int          `json:"slotPricePerHour"`
	AccHandlingFee      int          `json:"accHandlingFee"`
	MinPrice            int          `json:"minPrice"`
	DefaultPricePerStar int          `json:"defaultPricePerStar"`
	Single              BracketTable `json:"single"`
	Duo                 BracketTable `json:"duo"`
}

// BracketTable giá mỗi sao theo từng phân khúc rank (khớp bảng giá của shop)
type BracketTable struct {
	LowTiers          int `json:"lowTiers"`          // Đồng → Tinh Anh
	CaoThuOrDCTNotIII int `json:"caoThuOrDCTNotIII"` // Cao Thủ, Đại Cao Thủ IV
	DCT3From1To25     int `json:"dctIII_1_25"`       // Đại Cao Thủ III sao 20-25
	DCT3From26To49    int `json:"dctIII_26_49"`      // Đại Cao Thủ III sao 26+, ĐCT II/I
	ChienTuong50To75  int `json:"chienTuong_50_75"`
	ChienTuong76To99  int `json:"chienTuong_76_99"`
	ChienThan         int `json:"chienThan"` // Chiến Thần trở lên
}

type TimeSlot struct {
	Label string `json:"label"` // ví dụ "Ca 7g Sáng"
	Start string `json:"start"` // "HH:MM"
}

type BankInfo struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	MomoName      string `json:"momoName"`
	MomoNumber    string `json:"momoNumber"`
}

// Voucher: trong config.json mỗi voucher là một số cố định (0.1 = giảm 10%)
// hoặc một khoảng {"type":"range","min":0.05,"max":0.15} quay ngẫu nhiên mỗi lần tính
type Voucher struct {
	Fixed   float64
	Min     float64
	Max     float64
	IsRange bool
}

func (v *Voucher) UnmarshalJSON(data []byte) error {
	var fixed float64
	if err := json.Unmarshal(data, &fixed); err == nil {
		*v = Voucher{Fixed: fixed}
		return nil
	}

	var entry struct {
		Type string  `json:"type"`
		Min  float64 `json:"min"`
		Max  float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	if entry.Type == "range" {
		*v = Voucher{Min: entry.Min, Max: entry.Max, IsRange: true}
		return nil
	}
	// dạng không nhận ra → coi như không giảm
	*v = Voucher{}
	return nil
}

func (v Voucher) MarshalJSON() ([]byte, error) {
	if v.IsRange {
		return json.Marshal(map[string]any{"type": "range", "min": v.Min, "max": v.Max})
	}
	return json.Marshal(v.Fixed)
}
