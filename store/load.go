package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"rank_manager/config"
	"rank_manager/helper"
	"rank_manager/utils"
)

// Key che token/chat id trong config.json (khớp scripts encode/decode phía vận hành).
// Chỉ là che mắt thường, không phải bảo mật.
const secretKey = "G7@kL9!xT3#qBz1"

// LoadReferenceData đọc 3 nguồn dữ liệu tĩnh: thang rank, mốc rank, cấu hình.
// Phải chạy xong trước khi nhận request - mọi phép tính giá phụ thuộc vào đây.
// Lỗi đọc/parse không làm sập app: thay bằng giá trị mặc định và log cảnh báo.
func (s *Store) LoadReferenceData() {
	dataDir := config.ConfigOr("DATA_DIR", "data")

	if err := readJSONFile(filepath.Join(dataDir, "rank_titles.json"), &s.RankTitles); err != nil {
		log.Printf("Không thể tải thang rank, dùng thang mặc định: %v", err)
		s.RankTitles = append([]string{}, defaultRankTitles...)
	}

	if err := readJSONFile(filepath.Join(dataDir, "rank_options.json"), &s.RankOptions); err != nil {
		log.Printf("Không thể tải danh sách mốc rank: %v", err)
		s.RankOptions = nil
	}
	// Bảng min/max sao dựng một lần, sau đó chỉ đọc.
	// Bậc thiếu trong bảng sẽ rơi về khoảng mặc định khi tra (helper.StarRangeOf).
	s.Bounds = helper.BuildStarBounds(s.RankOptions)

	appConfig := defaultConfig()
	if err := readJSONFile(filepath.Join(dataDir, "config.json"), &appConfig); err != nil {
		log.Printf("Không thể tải cấu hình ứng dụng, dùng cấu hình mặc định: %v", err)
		appConfig = defaultConfig()
	}
	appConfig.Telegram.BotToken = utils.XorBase64Decode(appConfig.Telegram.BotTokenEnc, secretKey)
	appConfig.Telegram.ChatId = utils.XorBase64Decode(appConfig.Telegram.ChatIdEnc, secretKey)
	s.Config = appConfig

	log.Printf("Đã tải dữ liệu tham chiếu: %d bậc rank, %d mốc rank, %d ca, %d voucher",
		len(s.RankTitles), len(s.RankOptions), len(s.Config.TimeSlots), len(s.Config.Vouchers))
}

func readJSONFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
