package dto

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// CompleteProfileRequest carries the first-login onboarding form.
type CompleteProfileRequest struct {
	Name        string `form:"name" json:"name"`
	Password    string `form:"password" json:"password" binding:"required,min=6"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
	Gender      string `form:"gender" json:"gender"`
}

// UpdateProfileRequest carries the settings-page profile form. Email may be
// cleared by submitting an empty value.
type UpdateProfileRequest struct {
	Name        string `form:"name" json:"name"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
	Gender      string `form:"gender" json:"gender"`
	Email       string `form:"email" json:"email"`
}
