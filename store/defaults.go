package store

import "rank_manager/model"

// Thang rank mặc định, dùng khi không đọc được data/rank_titles.json
var defaultRankTitles = []string{
	"Đồng III", "Đồng II", "Đồng I",
	"Bạc III", "Bạc II", "Bạc I",
	"Vàng IV", "Vàng III", "Vàng II", "Vàng I",
	"Bạch Kim V", "Bạch Kim IV", "Bạch Kim III", "Bạch Kim II", "Bạch Kim I",
	"Kim Cương V", "Kim Cương IV", "Kim Cương III", "Kim Cương II", "Kim Cương I",
	"Tinh Anh V", "Tinh Anh IV", "Tinh Anh III", "Tinh Anh II", "Tinh Anh I",
	"Cao Thủ",
	"Đại Cao Thủ IV", "Đại Cao Thủ III", "Đại Cao Thủ II", "Đại Cao Thủ I",
	"Chiến Tướng",
	"Chiến Thần",
	"Thách Đấu",
}

// Cấu hình mặc định, thay thế toàn bộ khi data/config.json lỗi hoặc thiếu
func defaultConfig() model.AppConfig {
	return model.AppConfig{
		Telegram: model.TelegramConfig{},
		Pricing: model.PricingConfig{
			SlotPricePerHour:    15000,
			AccHandlingFee:      30000,
			MinPrice:            50000,
			DefaultPricePerStar: 5000,
			Single: model.BracketTable{
				LowTiers:          3000,
				CaoThuOrDCTNotIII: 4000,
				DCT3From1To25:     4000,
				DCT3From26To49:    7000,
				ChienTuong50To75:  15000,
				ChienTuong76To99:  20000,
				ChienThan:         30000,
			},
			Duo: model.BracketTable{
				LowTiers:          4000,
				CaoThuOrDCTNotIII: 6000,
				DCT3From1To25:     6000,
				DCT3From26To49:    9000,
				ChienTuong50To75:  17000,
				ChienTuong76To99:  25000,
				ChienThan:         40000,
			},
		},
		TimeSlots: []model.TimeSlot{
			{Label: "Ca 7g Sáng", Start: "07:00"},
			{Label: "Ca 2g Chiều", Start: "14:00"},
			{Label: "Ca 10g Tối", Start: "22:00"},
		},
		Vouchers: map[string]model.Voucher{},
		Banking: model.BankInfo{
			BankName:      "MB Bank",
			AccountName:   "NGUYEN THE TIEN QUANG",
			AccountNumber: "0666620059999",
			MomoName:      "NGUYEN THE TIEN QUANG",
			MomoNumber:    "0902639671",
		},
	}
}
