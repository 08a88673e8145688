package store

import (
	"strings"
	"testing"

	"rank_manager/constants"
	"rank_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	s := &Store{}
	s.RankTitles = defaultRankTitles
	s.Config = defaultConfig()
	return s
}

func TestSubmitBooking(t *testing.T) {
	s := newTestStore()

	booking := s.SubmitBooking(&model.Booking{
		Kind:         "slot",
		CustomerName: "Nguyễn Văn A",
		Time:         "Ca 7g Sáng",
		Duration:     3,
	})

	assert.NotZero(t, booking.ID)
	assert.True(t, strings.HasPrefix(booking.PublicCode, "BK-nguyen-van-a-"))
	assert.Equal(t, constants.BOOKING_PENDING, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Len(t, s.Pending(), 1)
	assert.Empty(t, s.Paid())
}

func TestSubmitBookingDistinctIDs(t *testing.T) {
	s := newTestStore()

	// hai submit liền nhau trong cùng mili giây vẫn phải ra id khác nhau
	a := s.SubmitBooking(&model.Booking{Kind: "slot", CustomerName: "A"})
	b := s.SubmitBooking(&model.Booking{Kind: "slot", CustomerName: "B"})
	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ID, a.ID)
}

func TestMarkPaid(t *testing.T) {
	s := newTestStore()
	submitted := s.SubmitBooking(&model.Booking{
		Kind:         "slot",
		CustomerName: "Nguyễn Văn A",
		Time:         "Ca 7g Sáng",
		Duration:     3,
	})

	paid, err := s.MarkPaid(submitted.ID, "Nguyễn Văn A", "0901234567")
	require.NoError(t, err)

	assert.Equal(t, constants.BOOKING_PAID, paid.Status)
	assert.Equal(t, "07:00", paid.StartTime)
	assert.Equal(t, "10:00", paid.EndTime)
	assert.Equal(t, "0901234567", paid.CustomerContact)
	assert.Empty(t, s.Pending())
	assert.Len(t, s.Paid(), 1)
}

func TestMarkPaidNotFound(t *testing.T) {
	s := newTestStore()

	_, err := s.MarkPaid(12345, "Ai Đó", "090")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// thanh toán hai lần: lần hai không còn trong sổ chờ
	b := s.SubmitBooking(&model.Booking{Kind: "slot", CustomerName: "A", Time: "Ca 7g Sáng"})
	_, err = s.MarkPaid(b.ID, "", "")
	require.NoError(t, err)
	_, err = s.MarkPaid(b.ID, "", "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMarkPaidKeepsInfoWhenPayInputEmpty(t *testing.T) {
	s := newTestStore()
	b := s.SubmitBooking(&model.Booking{Kind: "slot", CustomerName: "Giữ Nguyên", CustomerContact: "fb/abc", Time: "Ca 2g Chiều", Duration: 2})

	paid, err := s.MarkPaid(b.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Giữ Nguyên", paid.CustomerName)
	assert.Equal(t, "fb/abc", paid.CustomerContact)
	assert.Equal(t, "16:00", paid.EndTime)
}

func TestPendingReturnsCopies(t *testing.T) {
	s := newTestStore()
	s.SubmitBooking(&model.Booking{Kind: "slot", CustomerName: "A"})

	out := s.Pending()
	out[0].CustomerName = "Đã sửa"
	assert.Equal(t, "A", s.Pending()[0].CustomerName)
}

func TestOnChangeFires(t *testing.T) {
	s := newTestStore()
	calls := 0
	s.OnChange(func() { calls++ })

	b := s.SubmitBooking(&model.Booking{Kind: "slot", CustomerName: "A", Time: "Ca 7g Sáng"})
	_, err := s.MarkPaid(b.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
