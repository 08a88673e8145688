package handler

import (
	"fmt"
	"log"

	"rank_manager/constants"
	"rank_manager/helper"
	"rank_manager/model"
	"rank_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// applyVoucher áp voucher lên giá gốc. Trả giá cuối, tỷ lệ giảm và ghi chú
// hiển thị ("Voucher không khả thi" khi có nhập mã nhưng mã không áp được -
// khác với việc không nhập mã).
func (a *App) applyVoucher(basePrice int, voucherCode string) (int, float64, string) {
	if voucherCode == "" {
		return basePrice, 0, ""
	}
	discount, _ := helper.VoucherDiscount(a.Store.Config.Vouchers, voucherCode)
	if discount <= 0 {
		return basePrice, 0, constants.VOUCHER_NOT_APPLICABLE
	}
	return helper.ApplyDiscount(basePrice, discount), discount, ""
}

// POST /api/v1/slot/bao-gia
func (a *App) QuoteSlotPrice(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.SlotQuoteInput)

	if input.Duration == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"show": false})
	}

	pricing := a.Store.Config.Pricing
	basePrice := helper.ComputeSlotPrice(pricing, input.Duration)
	finalPrice, discount, voucherNote := a.applyVoucher(basePrice, input.Voucher)

	details := []string{
		fmt.Sprintf("Giá gốc: %s (%d tiếng × %s)",
			utils.FormatPrice(basePrice), input.Duration, utils.FormatPrice(pricing.SlotPricePerHour)),
	}
	if discount > 0 {
		details = append(details, fmt.Sprintf("Giảm giá: %.1f%% (-%s)",
			discount*100, utils.FormatPrice(basePrice-finalPrice)))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"show":        true,
		"basePrice":   basePrice,
		"finalPrice":  finalPrice,
		"totalText":   utils.FormatPrice(finalPrice),
		"details":     details,
		"voucherNote": voucherNote,
		"payment":     a.paymentInfo(finalPrice, ""),
	})
}

// POST /api/v1/slot
func (a *App) CreateSlotBooking(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.CreateSlotInput)

	pricing := a.Store.Config.Pricing
	basePrice := helper.ComputeSlotPrice(pricing, input.Duration)
	finalPrice, discount, voucherNote := a.applyVoucher(basePrice, input.Voucher)

	booking := &model.Booking{Kind: "slot"}
	copier.Copy(booking, &input)
	if booking.Description == "" {
		booking.Description = "Không có mô tả"
	}
	booking.Price = utils.FormatPrice(finalPrice)

	a.Store.SubmitBooking(booking)

	// Kiểm tra lần cuối trước khi gửi thông tin đến Telegram (Slot).
	// Booking vẫn được ghi sổ - chỉ thông báo bị chặn.
	blocked := helper.IsPhoneBlocked(input.CustomerContact)
	if blocked {
		log.Printf("🚫 [BLOCKED] Phát hiện SĐT bị chặn, không gửi Telegram (Slot): %s", input.CustomerContact)
	} else {
		a.Notifier.Notify(input.CustomerContact, FormatBookingMessage(booking))
	}

	response := fiber.Map{
		"message":  fmt.Sprintf("Thông tin đặt slot của khách hàng %s đã được ghi nhận thành công và gửi đến Admin. Chúng tôi sẽ liên hệ với bạn trong thời gian sớm nhất.", input.CustomerName),
		"booking":  booking,
		"discount": discount,
		"payment":  a.paymentInfo(finalPrice, booking.PublicCode),
	}
	if voucherNote != "" {
		response["voucherNote"] = voucherNote
	}
	if blocked {
		response["warning"] = constants.BLOCKED_CONTACT_WARNING
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, response)
}

// POST /api/v1/slot/:bookingId/thanh-toan
func (a *App) PaySlot(c *fiber.Ctx) error {
	bookingId, _ := c.Locals("bookingId").(int64)
	payInput, _ := c.Locals("payInput").(model.PayInput)

	booking, err := a.Store.MarkPaid(bookingId, payInput.CustomerName, payInput.CustomerContact)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking chờ thanh toán", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Thanh toán thành công! Slot đã được kích hoạt.",
		"booking": booking,
	})
}

// GET /api/v1/slot/cho-thanh-toan
func (a *App) GetPendingSlots(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, a.Store.Pending())
}

// GET /api/v1/slot/lich
func (a *App) GetSchedule(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, a.Store.Paid())
}
