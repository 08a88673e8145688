package handler

import (
	"encoding/base64"
	"fmt"
	"log"

	"rank_manager/store"
	"rank_manager/utils"
)

// App gom trạng thái ứng dụng và kênh thông báo cho các handler.
// Không dùng biến toàn cục: main khởi tạo và truyền xuống router.
type App struct {
	Store    *store.Store
	Notifier *Notifier
}

func New(s *store.Store) *App {
	return &App{
		Store:    s,
		Notifier: NewNotifier(NewTelegram(s.Config.Telegram)),
	}
}

// paymentInfo dựng khối thông tin chuyển khoản kèm QR cho response báo giá
func (a *App) paymentInfo(amount int, publicCode string) map[string]any {
	bank := a.Store.Config.Banking

	qrContent := fmt.Sprintf("%s|%s|%s|%d|%s",
		bank.BankName, bank.AccountName, bank.AccountNumber, amount, publicCode)
	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(qrContent, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR chuyển khoản: %v", err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return map[string]any{
		"bankName":      bank.BankName,
		"accountName":   bank.AccountName,
		"accountNumber": bank.AccountNumber,
		"momoName":      bank.MomoName,
		"momoNumber":    bank.MomoNumber,
		"qrCode":        qrBase64,
		"note":          "Vui lòng chuyển khoản theo thông tin bên trên và liên hệ Admin xác nhận.",
	}
}
