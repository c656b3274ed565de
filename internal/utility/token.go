package utility

import (
	"fmt"

	jwt "github.com/dgrijalva/jwt-go"
)

// TokenClaims là payload của JWT trả về khi đăng nhập
type TokenClaims struct {
	UserID       string `json:"user_id"`       // ID của người dùng
	Time         string `json:"time"`          // Thời gian tạo token (hex)
	RandomNumber string `json:"random_number"` // Số ngẫu nhiên chống trùng token
	jwt.StandardClaims
}

// CreateToken tạo JWT token với HS256 từ userID, thời gian và số ngẫu nhiên
// Returns:
//   - map chứa key "token" với giá trị là chuỗi token đã ký
//   - error nếu ký token thất bại
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := TokenClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực JWT token, trả về claims nếu hợp lệ
func ParseToken(secret string, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
