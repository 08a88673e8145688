package constants

const (
	BOOKING_PENDING = "pending"
	BOOKING_PAID    = "paid"
)

const (
	RANK_TYPE_SOLO = "Cày đơn"
	RANK_TYPE_DUO  = "Cày đội"
)

// ACC_HANDLING_KEEP là lựa chọn khách giao acc cho shop cầm (tính thêm phí)
const ACC_HANDLING_KEEP = "Khiêm cầm acc"

const (
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu nhập vào không phải là số"
	MISSING_FIELDS_PREFIX    = "Vui lòng điền đầy đủ các thông tin sau"
	BLOCKED_CONTACT_WARNING  = "⚠️ CẢNH BÁO: Số điện thoại này đã bị chặn khỏi hệ thống!"
	VOUCHER_NOT_APPLICABLE   = "Voucher không khả thi"
)

// BlockedNumbers: danh sách SĐT bị chặn thông báo - QUAN TRỌNG: KHÔNG XÓA!
var BlockedNumbers = []string{"0376593529", "0912767477"}
