package validate

import (
	"errors"
	"strconv"

	"rank_manager/constants"
	"rank_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetBookingId đọc và kiểm tra param id của booking
func GetBookingId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		bookingId, err := strconv.ParseInt(params, 10, 64)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("bookingId", bookingId)
		return c.Next()
	}
}

// missingFieldsResponse trả lỗi chặn, liệt kê đúng các trường còn thiếu
func missingFieldsResponse(c *fiber.Ctx, missing []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":       constants.MISSING_FIELDS_PREFIX,
		"missingFields": missing,
	})
}
