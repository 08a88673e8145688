package helper

import (
	"regexp"
	"strings"

	"rank_manager/constants"
)

var (
	// Bắt các dạng SĐT: 0376593529, +84376593529, 84376593529...
	phonePattern = regexp.MustCompile(`(?:\+?84|0)?[0-9]{9,10}`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// IsPhoneBlocked kiểm tra chuỗi liên hệ có chứa SĐT bị chặn hay không.
// Hai lớp: so khớp chuỗi thô, rồi tách các cụm số giống SĐT và chuẩn hóa về
// dạng 10 số đầu 0 để so với danh sách chặn.
func IsPhoneBlocked(contact string) bool {
	if contact == "" {
		return false
	}

	for _, blocked := range constants.BlockedNumbers {
		if strings.Contains(contact, blocked) {
			return true
		}
	}

	for _, match := range phonePattern.FindAllString(contact, -1) {
		normalized := nonDigit.ReplaceAllString(match, "")
		if strings.HasPrefix(normalized, "84") {
			normalized = "0" + normalized[2:]
		}
		if len(normalized) == 9 {
			normalized = "0" + normalized
		}
		for _, blocked := range constants.BlockedNumbers {
			if normalized == blocked {
				return true
			}
		}
	}

	return false
}
