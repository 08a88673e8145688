package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rank_manager/handler"
	"rank_manager/model"
	"rank_manager/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	t.Setenv("DATA_DIR", t.TempDir()) // không có file dữ liệu → dùng cấu hình mặc định

	s := store.New()
	s.Config.Vouchers = map[string]model.Voucher{"QUANGDEPTRAI": {Fixed: 0.1}}

	app := fiber.New()
	SetupRoutes(app, handler.New(s))
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestQuoteSlotPrice(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot/bao-gia", fiber.Map{"duration": 3})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["show"])
	assert.Equal(t, float64(45000), data["basePrice"])
	assert.Equal(t, "45.000 ₫", data["totalText"])
}

func TestQuoteSlotPriceZeroDurationHidesQuote(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot/bao-gia", fiber.Map{})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["show"])
}

func TestQuoteSlotPriceWithVoucher(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot/bao-gia",
		fiber.Map{"duration": 3, "voucher": "QUANGDEPTRAI"})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(40500), data["finalPrice"])
	assert.Equal(t, "", data["voucherNote"])
}

func TestQuoteSlotPriceInvalidVoucher(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot/bao-gia",
		fiber.Map{"duration": 3, "voucher": "KHONGTONTAI"})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(45000), data["finalPrice"])
	assert.Equal(t, "Voucher không khả thi", data["voucherNote"])
}

func TestCreateSlotBookingMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot", fiber.Map{"customerName": "A"})
	require.Equal(t, http.StatusBadRequest, status)

	assert.Equal(t, "Vui lòng điền đầy đủ các thông tin sau", body["message"])
	missing := body["missingFields"].([]any)
	assert.Contains(t, missing, "Thông tin liên hệ (FB/SĐT/Zalo)")
	assert.Contains(t, missing, "Ngày đặt slot")
	assert.Contains(t, missing, "Giờ (Ca)")
	assert.Contains(t, missing, "Thời lượng (giờ)")
	assert.NotContains(t, missing, "Họ và tên khách hàng")
}

func TestSlotBookingLifecycle(t *testing.T) {
	app, s := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot", fiber.Map{
		"customerName":    "Nguyễn Văn A",
		"customerContact": "fb.com/nguyenvana",
		"date":            "2026-09-01",
		"time":            "Ca 7g Sáng",
		"duration":        3,
	})
	require.Equal(t, http.StatusCreated, status)

	data := body["data"].(map[string]any)
	booking := data["booking"].(map[string]any)
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, "45.000 ₫", booking["price"])
	assert.Equal(t, "Không có mô tả", booking["description"])
	assert.NotContains(t, data, "warning")

	payment := data["payment"].(map[string]any)
	assert.Equal(t, "MB Bank", payment["bankName"])
	assert.NotEmpty(t, payment["qrCode"])

	require.Len(t, s.Pending(), 1)
	id := int64(booking["id"].(float64))

	// sổ chờ thanh toán có đúng booking vừa tạo
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/slot/cho-thanh-toan", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 1)

	// thanh toán: xác nhận lại thông tin khách
	status, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/slot/%d/thanh-toan", id), fiber.Map{
		"customerName":    "Nguyễn Văn A",
		"customerContact": "0901234567",
	})
	require.Equal(t, http.StatusOK, status)

	paid := body["data"].(map[string]any)["booking"].(map[string]any)
	assert.Equal(t, "paid", paid["status"])
	assert.Equal(t, "07:00", paid["startTime"])
	assert.Equal(t, "10:00", paid["endTime"])

	// lịch cày nhận booking đã thanh toán
	status, body = doJSON(t, app, http.MethodGet, "/api/v1/slot/lich", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]any), 1)
	assert.Empty(t, s.Pending())
}

func TestPaySlotRequiresCustomerInfo(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot/123/thanh-toan", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, status)
	missing := body["missingFields"].([]any)
	assert.Contains(t, missing, "Họ và tên khách hàng")
	assert.Contains(t, missing, "Thông tin liên hệ (FB/SĐT/Zalo)")
}

func TestPaySlotUnknownBooking(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/slot/999999/thanh-toan", fiber.Map{
		"customerName":    "Ai Đó",
		"customerContact": "0901234567",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPaySlotNonNumericId(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot/abc/thanh-toan", fiber.Map{
		"customerName":    "Ai Đó",
		"customerContact": "0901234567",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Dữ liệu nhập vào không phải là số", body["message"])
}

func TestCreateSlotBookingBlockedContact(t *testing.T) {
	app, s := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/slot", fiber.Map{
		"customerName":    "Khách Bị Chặn",
		"customerContact": "0376593529",
		"date":            "2026-09-01",
		"time":            "Ca 7g Sáng",
		"duration":        2,
	})
	require.Equal(t, http.StatusCreated, status)

	// booking vẫn vào sổ, chỉ thông báo bị chặn
	data := body["data"].(map[string]any)
	assert.Equal(t, "⚠️ CẢNH BÁO: Số điện thoại này đã bị chặn khỏi hệ thống!", data["warning"])
	assert.Len(t, s.Pending(), 1)
}

func TestQuoteRankPrice(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/rank/bao-gia", fiber.Map{
		"rankType":    "Cày đơn",
		"currentRank": "Đồng III 2 sao",
		"targetRank":  "Đồng III 5 sao",
	})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(9000), data["basePrice"])
	assert.Equal(t, float64(0), data["handlingFee"])
	assert.Equal(t, float64(9000), data["finalPrice"])
}

func TestQuoteRankPriceWithAccHandling(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/rank/bao-gia", fiber.Map{
		"rankType":    "Cày đơn",
		"currentRank": "Đồng III 2 sao",
		"targetRank":  "Đồng III 5 sao",
		"accHandling": "Khiêm cầm acc",
	})
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(30000), data["handlingFee"])
	assert.Equal(t, float64(39000), data["finalPrice"])
}

func TestQuoteRankPriceTargetNotAhead(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/rank/bao-gia", fiber.Map{
		"rankType":    "Cày đơn",
		"currentRank": "Vàng I 3 sao",
		"targetRank":  "Bạc III 1 sao",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestQuoteRankPriceUnknownTier(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/rank/bao-gia", fiber.Map{
		"rankType":    "Cày đơn",
		"currentRank": "Huyền Thoại 3 sao",
		"targetRank":  "Thách Đấu 200 sao",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateRankOrder(t *testing.T) {
	app, s := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/rank", fiber.Map{
		"customerName":    "Trần Thị B",
		"customerContact": "zalo 0905554443",
		"rankType":        "Cày đội",
		"currentRank":     "Bạc I 4 sao",
		"targetRank":      "Vàng IV 2 sao",
		"accHandling":     "Tự chơi",
	})
	require.Equal(t, http.StatusCreated, status)

	booking := body["data"].(map[string]any)["booking"].(map[string]any)
	assert.Equal(t, "rank", booking["kind"])
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, "12.000 ₫", booking["price"]) // 3 sao × 4.000 (bảng đội)
	require.Len(t, s.Pending(), 1)
}

func TestCreateRankOrderMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/rank", fiber.Map{
		"customerName": "A",
		"rankType":     "Cày đơn",
	})
	require.Equal(t, http.StatusBadRequest, status)

	missing := body["missingFields"].([]any)
	assert.Contains(t, missing, "Bậc rank hiện tại")
	assert.Contains(t, missing, "Rank sau khi cải thiện")
	assert.Contains(t, missing, "Tùy chọn khiêm cầm acc")
}

func TestGetResources(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/tai-nguyen/bac-rank", nil)
	require.Equal(t, http.StatusOK, status)
	titles := body["data"].([]any)
	assert.Len(t, titles, 33)
	assert.Equal(t, "Đồng III", titles[0])
	assert.Equal(t, "Thách Đấu", titles[len(titles)-1])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/tai-nguyen/cau-hinh", nil)
	require.Equal(t, http.StatusOK, status)
	cfg := body["data"].(map[string]any)
	assert.Contains(t, cfg, "pricing")
	assert.Contains(t, cfg, "timeSlots")
	assert.Contains(t, cfg, "banking")
	// credential Telegram không bao giờ lộ ra API công khai, kể cả bản đã mã hóa
	assert.NotContains(t, cfg, "telegram")
}
