package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneBlockedRawMatch(t *testing.T) {
	assert.True(t, IsPhoneBlocked("0376593529"))
	assert.True(t, IsPhoneBlocked("fb.com/abc - sđt 0376593529"))
	assert.False(t, IsPhoneBlocked("0376593528"))
	assert.False(t, IsPhoneBlocked("facebook.com/khachhang"))
	assert.False(t, IsPhoneBlocked(""))
}

func TestIsPhoneBlockedNormalizedForms(t *testing.T) {
	// biến thể +84 / 84 / bỏ số 0 đầu đều bị bắt
	assert.True(t, IsPhoneBlocked("+84376593529"))
	assert.True(t, IsPhoneBlocked("84376593529"))
	assert.True(t, IsPhoneBlocked("376593529"))
	assert.True(t, IsPhoneBlocked("zalo: 0912767477"))
}

func TestIsPhoneBlockedDigitsBuriedInText(t *testing.T) {
	assert.True(t, IsPhoneBlocked("Liên hệ qua zalo +84376593529 nhé"))
	// số tách rời bằng khoảng trắng không ghép lại được
	assert.False(t, IsPhoneBlocked("0376 593 529"))
}
