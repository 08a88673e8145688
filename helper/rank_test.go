package helper

import (
	"testing"

	"rank_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestParseRankLabel(t *testing.T) {
	assert.Equal(t, model.RankLabel{Tier: "Bạch Kim V", Star: 3}, ParseRankLabel("Bạch Kim V 3 sao"))
	assert.Equal(t, model.RankLabel{Tier: "Cao Thủ", Star: 0}, ParseRankLabel("Cao Thủ 0 sao"))
	assert.Equal(t, model.RankLabel{Tier: "Thách Đấu", Star: 215}, ParseRankLabel("Thách Đấu 215 sao"))
	// nhãn không có phần sao giữ nguyên làm tên bậc
	assert.Equal(t, model.RankLabel{Tier: "Chiến Tướng", Star: 0}, ParseRankLabel("Chiến Tướng"))
	assert.Equal(t, model.RankLabel{Tier: "Đồng III", Star: 2}, ParseRankLabel("  Đồng III 2 sao  "))
}

func TestBuildStarBounds(t *testing.T) {
	bounds := BuildStarBounds([]string{
		"Đồng III 1 sao", "Đồng III 5 sao", "Đồng III 3 sao",
		"Cao Thủ 0 sao", "Cao Thủ 9 sao",
		"", // nhãn rỗng bị bỏ qua
	})

	assert.Equal(t, model.StarRange{Min: 1, Max: 5}, bounds["Đồng III"])
	assert.Equal(t, model.StarRange{Min: 0, Max: 9}, bounds["Cao Thủ"])
	assert.NotContains(t, bounds, "")
}

func TestStarRangeOfFallback(t *testing.T) {
	assert.Equal(t, model.StarRange{Min: 1, Max: 5}, StarRangeOf(nil, "Kim Cương II"))
	assert.Equal(t, model.StarRange{Min: 0, Max: 9}, StarRangeOf(nil, "Cao Thủ"))
	assert.Equal(t, model.StarRange{Min: 20, Max: 29}, StarRangeOf(nil, "Đại Cao Thủ III"))
	assert.Equal(t, model.StarRange{Min: 50, Max: 99}, StarRangeOf(nil, "Chiến Tướng"))
	assert.Equal(t, model.StarRange{Min: 150, Max: 300}, StarRangeOf(nil, "Thách Đấu"))
	// bậc lạ cũng rơi về khoảng cơ bản
	assert.Equal(t, model.StarRange{Min: 1, Max: 5}, StarRangeOf(nil, "Huyền Thoại"))
}

func TestStarRangeOfPrefersBuiltBounds(t *testing.T) {
	bounds := model.TierStarBounds{"Cao Thủ": {Min: 0, Max: 7}}
	assert.Equal(t, model.StarRange{Min: 0, Max: 7}, StarRangeOf(bounds, "Cao Thủ"))
}
