package handler

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var summaryScheduler gocron.Scheduler

// StartDailySummaryScheduler gửi tổng kết sổ chờ thanh toán cho Admin
// mỗi sáng 08:00 giờ Việt Nam
func (a *App) StartDailySummaryScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler tổng kết: %v", err)
		return
	}

	summaryScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(8, 0, 0),
			),
		),
		gocron.NewTask(a.sendDailySummary),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký job tổng kết: %v", err)
		return
	}

	s.Start()
	log.Println("✅ Scheduler tổng kết sổ booking đã khởi động (08:00 ICT)")
}

func (a *App) StopDailySummaryScheduler() {
	if summaryScheduler != nil {
		summaryScheduler.Shutdown()
	}
}

func (a *App) sendDailySummary() {
	pending := a.Store.Pending()
	paid := a.Store.Paid()

	message := "📊 <b>TỔNG KẾT SỔ BOOKING</b>\n\n"
	message += fmt.Sprintf("• Chờ thanh toán: %d\n", len(pending))
	message += fmt.Sprintf("• Đã thanh toán: %d\n", len(paid))
	for _, b := range pending {
		message += fmt.Sprintf("  - %s | %s | %s\n", b.PublicCode, b.CustomerName, b.Price)
	}

	a.Notifier.Notify("", message)
}
