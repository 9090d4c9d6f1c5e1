package model

const (
	ProviderAnonymous = "anonymous"
	ProviderEmail     = "email"
)

// User 身份档案。匿名身份签发时不落库，首次更新资料或注册邮箱时才创建。
type User struct {
	BaseModel
	AnonID     string  `gorm:"uniqueIndex;size:64;not null" json:"anonId"`
	Email      *string `gorm:"uniqueIndex;size:100" json:"email,omitempty"`
	Password   string  `gorm:"size:100" json:"-"`
	Provider   string  `gorm:"size:20;default:'anonymous'" json:"provider"`
	AvatarURL  string  `gorm:"size:255" json:"avatarUrl,omitempty"`
	ThemeColor string  `gorm:"size:20" json:"themeColor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// DeviceToken 推送令牌，(anon_id, token) 唯一，重复注册为幂等
type DeviceToken struct {
	BaseModel
	AnonID   string `gorm:"uniqueIndex:idx_anon_token;size:64;not null" json:"anonId"`
	Token    string `gorm:"uniqueIndex:idx_anon_token;size:255;not null" json:"token"`
	Platform string `gorm:"size:20" json:"platform,omitempty"`
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
