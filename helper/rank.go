package helper

import (
	"regexp"
	"strconv"
	"strings"

	"rank_manager/model"
)

var (
	starSuffixPattern = regexp.MustCompile(`\s+\d+\s+sao$`)
	starValuePattern  = regexp.MustCompile(`(\d+)\s+sao`)
)

// ParseRankLabel tách nhãn "Bạch Kim V 3 sao" thành bậc + số sao.
// Nhãn không có phần "N sao" thì coi như 0 sao.
func ParseRankLabel(label string) model.RankLabel {
	tier := starSuffixPattern.ReplaceAllString(strings.TrimSpace(label), "")
	star := 0
	if m := starValuePattern.FindStringSubmatch(label); m != nil {
		star, _ = strconv.Atoi(m[1])
	}
	return model.RankLabel{Tier: tier, Star: star}
}

// BuildStarBounds dựng bảng min/max sao theo từng bậc từ danh sách mốc rank.
// Nhãn lỗi định dạng bị bỏ qua, không báo cho caller.
func BuildStarBounds(options []string) model.TierStarBounds {
	bounds := model.TierStarBounds{}
	for _, label := range options {
		parsed := ParseRankLabel(label)
		if parsed.Tier == "" {
			continue
		}
		current, ok := bounds[parsed.Tier]
		if !ok {
			bounds[parsed.Tier] = model.StarRange{Min: parsed.Star, Max: parsed.Star}
			continue
		}
		if parsed.Star < current.Min {
			current.Min = parsed.Star
		}
		if parsed.Star > current.Max {
			current.Max = parsed.Star
		}
		bounds[parsed.Tier] = current
	}
	return bounds
}

// StarRangeOf trả khoảng sao của một bậc. Bậc không có trong bảng dựng sẵn
// (dữ liệu thiếu hoặc lỗi) thì rơi về khoảng mặc định theo bảng giá của shop.
func StarRangeOf(bounds model.TierStarBounds, tier string) model.StarRange {
	if r, ok := bounds[tier]; ok && r.Min <= r.Max {
		return r
	}
	switch ClassifyTier(tier) {
	case TierCaoThu:
		return model.StarRange{Min: 0, Max: 9}
	case TierDaiCaoThu4:
		return model.StarRange{Min: 10, Max: 19}
	case TierDaiCaoThu3:
		return model.StarRange{Min: 20, Max: 29}
	case TierDaiCaoThu2:
		return model.StarRange{Min: 30, Max: 39}
	case TierDaiCaoThu1:
		return model.StarRange{Min: 40, Max: 49}
	case TierChienTuong:
		return model.StarRange{Min: 50, Max: 99}
	case TierChienThan:
		return model.StarRange{Min: 100, Max: 149}
	case TierThachDau:
		return model.StarRange{Min: 150, Max: 300}
	}
	return model.StarRange{Min: 1, Max: 5}
}
