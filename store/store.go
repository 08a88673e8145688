package store

import (
	"errors"
	"sync"
	"time"

	"rank_manager/constants"
	"rank_manager/helper"
	"rank_manager/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var ErrBookingNotFound = errors.New("không có booking chờ thanh toán với id này")

// Store giữ toàn bộ trạng thái ứng dụng trong bộ nhớ: dữ liệu tham chiếu
// (chỉ đọc sau khi load) và hai sổ booking. Không có tầng lưu trữ - dữ liệu
// sống theo vòng đời tiến trình, đúng với cách storefront vận hành.
type Store struct {
	RankTitles  []string
	RankOptions []string
	Bounds      model.TierStarBounds
	Config      model.AppConfig

	mu       sync.Mutex
	pending  []*model.Booking
	paid     []*model.Booking
	lastID   int64
	onChange func()
}

func New() *Store {
	s := &Store{}
	s.LoadReferenceData()
	return s
}

// OnChange đăng ký callback gọi sau mỗi thay đổi sổ (đẩy cập nhật websocket)
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// SubmitBooking ghi một booking mới vào sổ chờ thanh toán và trả về bản ghi.
// Caller chịu trách nhiệm validate trước - ở đây không bao giờ tạo bản ghi dở.
func (s *Store) SubmitBooking(booking *model.Booking) *model.Booking {
	s.mu.Lock()

	now := time.Now()
	id := now.UnixMilli()
	// hai submit trong cùng một mili giây vẫn phải ra id phân biệt được
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	booking.ID = id
	booking.PublicCode = "BK-" + slug.Make(booking.CustomerName) + "-" + uuid.New().String()[:8]
	booking.Status = constants.BOOKING_PENDING
	booking.CreatedAt = now
	s.pending = append(s.pending, booking)

	s.mu.Unlock()
	s.notifyChange()
	return booking
}

// MarkPaid chuyển booking từ sổ chờ sang sổ đã thanh toán, tính giờ bắt đầu
// theo bảng ca và giờ kết thúc theo thời lượng (quay vòng 24h). Khách xác nhận
// lại họ tên và liên hệ lúc thanh toán nên hai trường này được cập nhật theo.
// Không tìm thấy (đã thanh toán rồi, hoặc chưa từng tồn tại) là lỗi báo cho
// người vận hành, không phải sự cố.
func (s *Store) MarkPaid(id int64, customerName, customerContact string) (*model.Booking, error) {
	s.mu.Lock()

	idx := -1
	for i, b := range s.pending {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrBookingNotFound
	}

	booking := s.pending[idx]
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)

	if customerName != "" {
		booking.CustomerName = customerName
	}
	if customerContact != "" {
		booking.CustomerContact = customerContact
	}
	booking.Status = constants.BOOKING_PAID
	booking.StartTime = helper.StartTimeOf(s.Config.TimeSlots, booking.Time)
	booking.EndTime = helper.EndTimeOf(s.Config.TimeSlots, booking.Time, booking.Duration)
	s.paid = append(s.paid, booking)

	s.mu.Unlock()
	s.notifyChange()
	return booking, nil
}

// Pending trả bản sao sổ chờ thanh toán
func (s *Store) Pending() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0, len(s.pending))
	for _, b := range s.pending {
		out = append(out, *b)
	}
	return out
}

// Paid trả bản sao sổ đã thanh toán (lịch cày)
func (s *Store) Paid() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0, len(s.paid))
	for _, b := range s.paid {
		out = append(out, *b)
	}
	return out
}

func (s *Store) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}
