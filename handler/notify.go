package handler

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"rank_manager/config"
	"rank_manager/helper"
	"rank_manager/model"

	"github.com/robfig/cron/v3"
	"gopkg.in/gomail.v2"
)

const (
	notifyQueueSize   = 64
	maxResendAttempts = 3
	maxParkedMessages = 100
)

type notifyMessage struct {
	Contact  string // thông tin liên hệ của khách, để kiểm tra chặn lần cuối
	Text     string
	Attempts int
}

// Notifier gom tin nhắn cho Admin vào hàng đợi và gửi nền: flow của khách
// không bao giờ chờ (hay fail theo) kênh thông báo. Tin gửi lỗi được giữ lại
// và cron quét gửi lại, tối đa maxResendAttempts lần rồi bỏ.
type Notifier struct {
	telegram *Telegram
	queue    chan notifyMessage

	mu     sync.Mutex
	parked []notifyMessage

	resendCron *cron.Cron
}

func NewNotifier(telegram *Telegram) *Notifier {
	return &Notifier{
		telegram: telegram,
		queue:    make(chan notifyMessage, notifyQueueSize),
	}
}

// Start chạy worker gửi tin và cron gửi lại tin lỗi (mỗi 5 phút)
func (n *Notifier) Start() {
	go func() {
		for msg := range n.queue {
			n.deliver(msg)
		}
	}()

	n.resendCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	_, err := n.resendCron.AddFunc("*/5 * * * *", n.resendParked)
	if err != nil {
		log.Printf("Lỗi khởi tạo cron gửi lại thông báo: %v", err)
		return
	}
	n.resendCron.Start()
	log.Println("Worker thông báo Telegram đã khởi động (gửi lại mỗi 5 phút)")
}

func (n *Notifier) Stop() {
	if n.resendCron != nil {
		n.resendCron.Stop()
	}
}

// Notify xếp một tin vào hàng đợi. Hàng đợi đầy thì bỏ tin và log - không
// bao giờ chặn caller.
func (n *Notifier) Notify(customerContact, text string) {
	select {
	case n.queue <- notifyMessage{Contact: customerContact, Text: text}:
	default:
		log.Println("Hàng đợi thông báo đầy, bỏ tin nhắn")
	}
}

func (n *Notifier) deliver(msg notifyMessage) {
	// Chốt chặn thứ hai, độc lập với kiểm tra ở handler
	if helper.IsPhoneBlocked(msg.Contact) {
		log.Printf("🚫 [BLOCKED] SĐT bị chặn, không gửi Telegram: %s", msg.Contact)
		return
	}

	if err := n.telegram.Send(msg.Text); err != nil {
		log.Printf("Lỗi gửi thông báo Telegram: %v", err)
		n.park(msg)
		return
	}

	// Bản sao qua email cho Admin nếu có cấu hình SMTP (best-effort)
	sendOperatorEmailCopy(msg.Text)
}

func (n *Notifier) park(msg notifyMessage) {
	msg.Attempts++
	if msg.Attempts >= maxResendAttempts {
		log.Printf("Bỏ thông báo sau %d lần gửi lỗi", msg.Attempts)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.parked) >= maxParkedMessages {
		log.Println("Kho tin chờ gửi lại đầy, bỏ tin cũ nhất")
		n.parked = n.parked[1:]
	}
	n.parked = append(n.parked, msg)
}

func (n *Notifier) resendParked() {
	n.mu.Lock()
	batch := n.parked
	n.parked = nil
	n.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	log.Printf("Gửi lại %d thông báo lỗi trước đó", len(batch))
	for _, msg := range batch {
		n.deliver(msg)
	}
}

// sendOperatorEmailCopy gửi bản sao thông báo tới hộp thư Admin, bỏ qua nếu
// chưa cấu hình SMTP. Lỗi chỉ log, không ảnh hưởng gì khác.
func sendOperatorEmailCopy(text string) {
	host := config.Config("SMTP_HOST")
	to := config.Config("OPERATOR_EMAIL")
	if host == "" || to == "" {
		return
	}

	go func() {
		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))

		m := gomail.NewMessage()
		m.SetHeader("From", config.ConfigOr("SMTP_FROM", "RankBooster <no-reply@rankbooster.vn>"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "[RankBooster] Thông báo khách hàng mới")
		m.SetBody("text/html", text)

		d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email bản sao cho Admin: %v", err)
		}
	}()
}

// FormatBookingMessage dựng nội dung HTML gửi Telegram cho một booking
func FormatBookingMessage(b *model.Booking) string {
	message := "🔔 <b>THÔNG TIN KHÁCH HÀNG MỚI</b>\n\n"
	message += "👤 <b>Thông tin khách hàng:</b>\n"
	message += fmt.Sprintf("• Họ và tên: %s\n", orDefault(b.CustomerName, "Chưa nhập"))
	message += fmt.Sprintf("• Liên hệ: %s\n\n", orDefault(b.CustomerContact, "Chưa nhập"))

	if b.Kind == "slot" {
		message += "📅 <b>Thông tin đặt slot:</b>\n"
		message += fmt.Sprintf("• Ngày: %s\n", b.Date)
		message += fmt.Sprintf("• Giờ: %s\n", b.Time)
		message += fmt.Sprintf("• Thời lượng: %d tiếng\n", b.Duration)
		if b.Description != "" {
			message += fmt.Sprintf("• Mô tả: %s\n", b.Description)
		}
		if b.Voucher != "" {
			message += fmt.Sprintf("• Voucher: %s\n", b.Voucher)
		}
		message += fmt.Sprintf("• Giá: %s\n\n", orDefault(b.Price, "Chưa tính"))
	}

	if b.Kind == "rank" {
		message += "🏆 <b>Thông tin cải thiện rank:</b>\n"
		message += fmt.Sprintf("• Loại cày: %s\n", b.RankType)
		message += fmt.Sprintf("• Rank hiện tại: %s\n", b.CurrentRank)
		message += fmt.Sprintf("• Rank mục tiêu: %s\n", b.TargetRank)
		message += fmt.Sprintf("• Khiêm cầm acc: %s\n", b.AccHandling)
		if b.Voucher != "" {
			message += fmt.Sprintf("• Voucher: %s\n", b.Voucher)
		}
		if b.Description != "" {
			message += fmt.Sprintf("• Ghi chú: %s\n", b.Description)
		}
		message += fmt.Sprintf("• Giá: %s\n\n", orDefault(b.Price, "Chưa tính"))
	}

	message += fmt.Sprintf("⏰ <b>Thời gian:</b> %s", time.Now().Format("15:04:05 02/01/2006"))
	return message
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
