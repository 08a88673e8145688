package handler

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"rank_manager/constants"
	"rank_manager/helper"
	"rank_manager/model"
	"rank_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	errUnknownRank    = errors.New("bậc rank không có trong thang rank")
	errTargetNotAhead = errors.New("rank mục tiêu phải cao hơn rank hiện tại")
)

type rankQuote struct {
	BasePrice      int
	HandlingFee    int
	FinalPrice     int
	Discount       float64
	VoucherNote    string
	WithAccHandled bool
}

// buildRankQuote tính báo giá cày rank cho một yêu cầu đã qua validate hình thức.
// Bậc rank lạ hay mục tiêu không cao hơn hiện tại là lỗi nghiệp vụ: không bao
// giờ trả về báo giá 0 đồng như một báo giá hợp lệ.
func (a *App) buildRankQuote(input model.CreateRankInput) (rankQuote, error) {
	cur := helper.ParseRankLabel(input.CurrentRank)
	tgt := helper.ParseRankLabel(input.TargetRank)

	curIdx, tgtIdx := -1, -1
	for i, title := range a.Store.RankTitles {
		if title == cur.Tier {
			curIdx = i
		}
		if title == tgt.Tier {
			tgtIdx = i
		}
	}
	if curIdx == -1 || tgtIdx == -1 {
		return rankQuote{}, errUnknownRank
	}
	if tgtIdx < curIdx || (tgtIdx == curIdx && tgt.Star <= cur.Star) {
		return rankQuote{}, errTargetNotAhead
	}

	pricing := a.Store.Config.Pricing
	basePrice := helper.ComputeRankPrice(pricing, a.Store.RankTitles, a.Store.Bounds,
		input.RankType, input.CurrentRank, input.TargetRank)

	quote := rankQuote{BasePrice: basePrice}
	if strings.Contains(input.AccHandling, constants.ACC_HANDLING_KEEP) {
		quote.HandlingFee = pricing.AccHandlingFee
		quote.WithAccHandled = true
	}

	total := quote.BasePrice + quote.HandlingFee
	quote.FinalPrice, quote.Discount, quote.VoucherNote = a.applyVoucher(total, input.Voucher)
	return quote, nil
}

func (a *App) rankQuoteDetails(input model.CreateRankInput, quote rankQuote) []string {
	details := []string{
		"Chi tiết hóa đơn:",
		fmt.Sprintf("Khách hàng: %s", input.CustomerName),
		fmt.Sprintf("Loại cày: %s", input.RankType),
		fmt.Sprintf("Từ: %s → %s", input.CurrentRank, input.TargetRank),
		fmt.Sprintf("Giá cơ bản: %s", utils.FormatPrice(quote.BasePrice)),
	}
	if quote.WithAccHandled {
		details = append(details, fmt.Sprintf("Phí cầm acc: %s", utils.FormatPrice(quote.HandlingFee)))
	}
	if quote.Discount > 0 {
		saved := quote.BasePrice + quote.HandlingFee - quote.FinalPrice
		details = append(details, fmt.Sprintf("Giảm giá: %.1f%% (-%s)", quote.Discount*100, utils.FormatPrice(saved)))
	}
	return details
}

// POST /api/v1/rank/bao-gia
func (a *App) QuoteRankPrice(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.CreateRankInput)

	quote, err := a.buildRankQuote(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể định giá yêu cầu này", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"basePrice":   quote.BasePrice,
		"handlingFee": quote.HandlingFee,
		"finalPrice":  quote.FinalPrice,
		"totalText":   utils.FormatPrice(quote.FinalPrice),
		"details":     a.rankQuoteDetails(input, quote),
		"voucherNote": quote.VoucherNote,
		"payment":     a.paymentInfo(quote.FinalPrice, ""),
	})
}

// POST /api/v1/rank
func (a *App) CreateRankOrder(c *fiber.Ctx) error {
	input, _ := c.Locals("input").(model.CreateRankInput)

	quote, err := a.buildRankQuote(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể định giá yêu cầu này", err)
	}

	booking := &model.Booking{
		Kind:            "rank",
		CustomerName:    input.CustomerName,
		CustomerContact: input.CustomerContact,
		RankType:        input.RankType,
		CurrentRank:     input.CurrentRank,
		TargetRank:      input.TargetRank,
		AccHandling:     input.AccHandling,
		Voucher:         input.Voucher,
		Description:     orDefault(input.Note, "Không có mô tả"),
		Price:           utils.FormatPrice(quote.FinalPrice),
	}
	a.Store.SubmitBooking(booking)

	// Kiểm tra lần cuối trước khi gửi thông tin đến Telegram (Rank)
	blocked := helper.IsPhoneBlocked(input.CustomerContact)
	if blocked {
		log.Printf("🚫 [BLOCKED] Phát hiện SĐT bị chặn, không gửi Telegram (Rank): %s", input.CustomerContact)
	} else {
		a.Notifier.Notify(input.CustomerContact, FormatBookingMessage(booking))
	}

	response := fiber.Map{
		"message":  fmt.Sprintf("Thông tin đặt cải thiện rank của khách hàng %s đã được ghi nhận thành công và gửi đến Admin. Chúng tôi sẽ liên hệ với bạn trong thời gian sớm nhất.", input.CustomerName),
		"booking":  booking,
		"details":  a.rankQuoteDetails(input, quote),
		"discount": quote.Discount,
		"payment":  a.paymentInfo(quote.FinalPrice, booking.PublicCode),
	}
	if quote.VoucherNote != "" {
		response["voucherNote"] = quote.VoucherNote
	}
	if blocked {
		response["warning"] = constants.BLOCKED_CONTACT_WARNING
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, response)
}
