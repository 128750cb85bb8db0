package handler

type sendVerificationRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type verifyCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"code"  validate:"required"`
}
