package helper

import (
	"math"
	"math/rand"

	"rank_manager/model"
)

// VoucherDiscount tra mức giảm của một mã voucher. Trả (tỷ lệ, có tồn tại).
// Voucher dạng khoảng quay lại MỖI LẦN gọi - cùng một mã có thể ra mức giảm
// khác nhau giữa hai lần tính giá.
func VoucherDiscount(vouchers map[string]model.Voucher, code string) (float64, bool) {
	entry, ok := vouchers[code]
	if !ok {
		return 0, false
	}
	if !entry.IsRange {
		return entry.Fixed, true
	}
	if entry.Max <= entry.Min {
		return entry.Min, true
	}
	return entry.Min + rand.Float64()*(entry.Max-entry.Min), true
}

// ApplyDiscount áp tỷ lệ giảm lên giá gốc, làm tròn về đồng (VND không có lẻ)
func ApplyDiscount(basePrice int, discount float64) int {
	return int(math.Round(float64(basePrice) * (1 - discount)))
}
