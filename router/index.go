package router

import (
	"rank_manager/handler"
	"rank_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, a *handler.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	// Đặt slot
	slot := v1.Group("/slot")
	slot.Post("/bao-gia", validate.SlotQuote(), a.QuoteSlotPrice)
	slot.Post("/", validate.CreateSlotBooking(), a.CreateSlotBooking)
	slot.Post("/:bookingId/thanh-toan", validate.GetBookingId("bookingId"), validate.PayBooking(), a.PaySlot)
	slot.Get("/cho-thanh-toan", a.GetPendingSlots)
	slot.Get("/lich", a.GetSchedule)
	slot.Get("/ws", websocket.New(a.LedgerWebsocket))

	// Đơn cày rank
	rank := v1.Group("/rank")
	rank.Post("/bao-gia", validate.RankQuote(), a.QuoteRankPrice)
	rank.Post("/", validate.CreateRankOrder(), a.CreateRankOrder)

	// Dữ liệu tham chiếu cho giao diện
	resources := v1.Group("/tai-nguyen")
	resources.Get("/bac-rank", a.GetRankTitles)
	resources.Get("/moc-rank", a.GetRankOptions)
	resources.Get("/cau-hinh", a.GetPublicConfig)
}
