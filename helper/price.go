package helper

import (
	"strings"

	"rank_manager/constants"
	"rank_manager/model"
)

// TierClass phân loại bậc rank để tra bảng giá theo sao
type TierClass int

const (
	TierUnknown TierClass = iota
	TierLow               // Đồng → Tinh Anh
	TierCaoThu
	TierDaiCaoThu4
	TierDaiCaoThu3
	TierDaiCaoThu2
	TierDaiCaoThu1
	TierChienTuong
	TierChienThan
	TierThachDau
)

var lowTierPrefixes = []string{"Đồng", "Bạc", "Vàng", "Bạch Kim", "Kim Cương", "Tinh Anh"}

// ClassifyTier ánh xạ tên bậc sang phân loại giá. Bậc lạ → TierUnknown
// (tính theo defaultPricePerStar, không theo bảng phân khúc).
func ClassifyTier(tier string) TierClass {
	switch tier {
	case "Cao Thủ":
		return TierCaoThu
	case "Đại Cao Thủ IV":
		return TierDaiCaoThu4
	case "Đại Cao Thủ III":
		return TierDaiCaoThu3
	case "Đại Cao Thủ II":
		return TierDaiCaoThu2
	case "Đại Cao Thủ I":
		return TierDaiCaoThu1
	case "Chiến Tướng":
		return TierChienTuong
	case "Chiến Thần":
		return TierChienThan
	case "Thách Đấu":
		return TierThachDau
	}
	for _, prefix := range lowTierPrefixes {
		if strings.HasPrefix(tier, prefix) {
			return TierLow
		}
	}
	return TierUnknown
}

// PricePerStar giá một sao theo phân khúc. Các mốc cắt trong bậc (ĐCT III
// tách tại sao 26, Chiến Tướng tách 75/76) là mốc cố định theo bảng giá,
// không phải làm tròn.
func PricePerStar(table model.BracketTable, defaultPerStar int, class TierClass, star int) int {
	switch class {
	case TierLow:
		return table.LowTiers
	case TierCaoThu, TierDaiCaoThu4:
		return table.CaoThuOrDCTNotIII
	case TierDaiCaoThu3:
		if star >= 26 {
			return table.DCT3From26To49
		}
		return table.DCT3From1To25
	case TierDaiCaoThu2, TierDaiCaoThu1:
		return table.DCT3From26To49
	case TierChienTuong:
		if star >= 76 && star <= 99 {
			return table.ChienTuong76To99
		}
		// sao ngoài khoảng quen thuộc của Chiến Tướng tính theo band thấp
		return table.ChienTuong50To75
	case TierChienThan, TierThachDau:
		return table.ChienThan
	}
	return defaultPerStar
}

// ComputeRankPrice tính tổng giá kéo rank từ currentRank lên targetRank bằng
// cách cộng giá từng sao trên cả quãng đường. Bậc không có trong thang rank
// trả 0 - caller phải coi đây là yêu cầu không định giá được, không phải giá 0.
func ComputeRankPrice(pricing model.PricingConfig, rankTitles []string, bounds model.TierStarBounds, rankType, currentRank, targetRank string) int {
	cur := ParseRankLabel(currentRank)
	tgt := ParseRankLabel(targetRank)

	curIdx := indexOfTitle(rankTitles, cur.Tier)
	tgtIdx := indexOfTitle(rankTitles, tgt.Tier)
	if curIdx == -1 || tgtIdx == -1 {
		return 0
	}

	table := pricing.Single
	if rankType == constants.RANK_TYPE_DUO {
		table = pricing.Duo
	}

	sum := 0
	for i := curIdx; i <= tgtIdx; i++ {
		tier := rankTitles[i]
		rng := StarRangeOf(bounds, tier)

		// Sao 0 ở chân bậc không bao giờ được tính (bảng giá tính từ 1 sao)
		startStar := rng.Min
		if startStar < 1 {
			startStar = 1
		}
		if i == curIdx {
			startStar = cur.Star + 1
		}
		endStar := rng.Max
		if i == tgtIdx {
			endStar = tgt.Star
		}

		class := ClassifyTier(tier)
		for star := startStar; star <= endStar; star++ {
			sum += PricePerStar(table, pricing.DefaultPricePerStar, class, star)
		}
	}

	// Quãng rỗng (target không đứng trước current) rơi về giá sàn, không phải lỗi
	if sum <= 0 {
		return pricing.MinPrice
	}
	return sum
}

// ComputeSlotPrice giá thuê slot theo giờ
func ComputeSlotPrice(pricing model.PricingConfig, duration int) int {
	return duration * pricing.SlotPricePerHour
}

func indexOfTitle(titles []string, tier string) int {
	for i, t := range titles {
		if t == tier {
			return i
		}
	}
	return -1
}
