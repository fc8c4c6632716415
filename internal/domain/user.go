package domain

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	JoinDate   string `json:"joinDate,omitempty"`
	Department string `json:"department,omitempty"`
}
