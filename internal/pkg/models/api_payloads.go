package models

// Request/response shapes of the recharge backend. Field names follow the
// backend's JSON contract exactly.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type PlansResponse struct {
	Success bool   `json:"success"`
	Plans   []Plan `json:"plans"`
	Message string `json:"message,omitempty"`
}

type PlanMutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Plan    *Plan  `json:"plan,omitempty"`
}

// RechargeRequest carries the client-computed amount and discount fields.
type RechargeRequest struct {
	PhoneNumber     string `json:"phoneNumber"`
	Operator        string `json:"operator"`
	Plan            string `json:"plan"`
	Amount          int    `json:"amount"`
	OriginalAmount  int    `json:"originalAmount"`
	DiscountApplied int    `json:"discountApplied"`
	DiscountCode    string `json:"discountCode,omitempty"`
}

type RechargeResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message,omitempty"`
	Recharge *RechargeTransaction `json:"recharge,omitempty"`
}

type RechargeListResponse struct {
	Success   bool                  `json:"success"`
	Recharges []RechargeTransaction `json:"recharges"`
	Message   string                `json:"message,omitempty"`
}

type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
	Message string `json:"message,omitempty"`
}

type ProfileResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// ServerStats is the backend's own aggregate view. The dashboard computes its
// numbers client-side; this shape only covers the boundary endpoint.
type ServerStats struct {
	TotalTransactions int `json:"totalTransactions"`
	TotalRevenue      int `json:"totalRevenue"`
	TotalUsers        int `json:"totalUsers"`
}

type StatsResponse struct {
	Success bool        `json:"success"`
	Stats   ServerStats `json:"stats"`
	Message string      `json:"message,omitempty"`
}
