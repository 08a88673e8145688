package validate

import (
	"rank_manager/constants"
	"rank_manager/model"
	"rank_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSlotBooking kiểm tra dữ liệu đặt slot trước khi vào handler
func CreateSlotBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSlotInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ", err)
		}

		var missing []string
		if input.CustomerName == "" {
			missing = append(missing, "Họ và tên khách hàng")
		}
		if input.CustomerContact == "" {
			missing = append(missing, "Thông tin liên hệ (FB/SĐT/Zalo)")
		}
		if input.Date == "" {
			missing = append(missing, "Ngày đặt slot")
		}
		if input.Time == "" {
			missing = append(missing, "Giờ (Ca)")
		}
		if input.Duration <= 0 {
			missing = append(missing, "Thời lượng (giờ)")
		}
		if len(missing) > 0 {
			return missingFieldsResponse(c, missing)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thời lượng đặt slot không hợp lệ", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// CreateRankOrder kiểm tra dữ liệu đơn cày rank
func CreateRankOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRankInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ", err)
		}

		var missing []string
		if input.CustomerName == "" {
			missing = append(missing, "Họ và tên khách hàng")
		}
		if input.CustomerContact == "" {
			missing = append(missing, "Thông tin liên hệ (FB/SĐT/Zalo)")
		}
		if input.RankType == "" {
			missing = append(missing, "Loại cày")
		}
		if input.CurrentRank == "" {
			missing = append(missing, "Bậc rank hiện tại")
		}
		if input.TargetRank == "" {
			missing = append(missing, "Rank sau khi cải thiện")
		}
		if input.AccHandling == "" {
			missing = append(missing, "Tùy chọn khiêm cầm acc")
		}
		if len(missing) > 0 {
			return missingFieldsResponse(c, missing)
		}

		if input.RankType != constants.RANK_TYPE_SOLO && input.RankType != constants.RANK_TYPE_DUO {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Loại cày không hợp lệ", nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// RankQuote kiểm tra dữ liệu báo giá cày rank - báo giá chưa cần thông tin khách
func RankQuote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRankInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ", err)
		}

		var missing []string
		if input.RankType == "" {
			missing = append(missing, "Loại cày")
		}
		if input.CurrentRank == "" {
			missing = append(missing, "Bậc rank hiện tại")
		}
		if input.TargetRank == "" {
			missing = append(missing, "Rank sau khi cải thiện")
		}
		if len(missing) > 0 {
			return missingFieldsResponse(c, missing)
		}

		if input.RankType != constants.RANK_TYPE_SOLO && input.RankType != constants.RANK_TYPE_DUO {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Loại cày không hợp lệ", nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// SlotQuote kiểm tra dữ liệu báo giá slot
func SlotQuote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SlotQuoteInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thời lượng đặt slot không hợp lệ", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// PayBooking kiểm tra lại thông tin khách trước khi xác nhận thanh toán
func PayBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PayInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ", err)
		}

		var missing []string
		if input.CustomerName == "" {
			missing = append(missing, "Họ và tên khách hàng")
		}
		if input.CustomerContact == "" {
			missing = append(missing, "Thông tin liên hệ (FB/SĐT/Zalo)")
		}
		if len(missing) > 0 {
			return missingFieldsResponse(c, missing)
		}

		c.Locals("payInput", input)
		return c.Next()
	}
}
