package utils

import "encoding/base64"

// XOR + Base64 để che token/chat id trong config.json khỏi bị đọc bằng mắt thường.
// Đây KHÔNG phải mã hóa bảo mật: key nằm ngay trong mã nguồn và phép biến đổi
// đảo ngược được. Không tự ý "nâng cấp" lên mã hóa thật ở đây - credential thật
// phải được bảo vệ ở tầng triển khai.

func XorBase64Encode(plain, key string) string {
	if key == "" {
		return ""
	}
	in := []byte(plain)
	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ key[i%len(key)]
	}
	return base64.StdEncoding.EncodeToString(out)
}

func XorBase64Decode(encoded, key string) string {
	if encoded == "" || key == "" {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	for i := range raw {
		raw[i] ^= key[i%len(key)]
	}
	return string(raw)
}
