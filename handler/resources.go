package handler

import (
	"rank_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/v1/tai-nguyen/bac-rank
func (a *App) GetRankTitles(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, a.Store.RankTitles)
}

// GET /api/v1/tai-nguyen/moc-rank
func (a *App) GetRankOptions(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, a.Store.RankOptions)
}

// GET /api/v1/tai-nguyen/cau-hinh
// Chỉ trả phần cấu hình công khai cho form - không bao giờ lộ credential
// Telegram (kể cả bản đã che)
func (a *App) GetPublicConfig(c *fiber.Ctx) error {
	cfg := a.Store.Config
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pricing":   cfg.Pricing,
		"timeSlots": cfg.TimeSlots,
		"banking":   cfg.Banking,
	})
}
