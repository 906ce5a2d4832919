package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// PointModel é o model GORM para pontos de negócio no mapa
type PointModel struct {
	ID          string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     string  `gorm:"type:uuid;not null;index"`
	Lat         float64 `gorm:"not null"`
	Lng         float64 `gorm:"not null"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description string  `gorm:"type:text"`
	Phone       string  `gorm:"type:varchar(50)"`
	Category    string  `gorm:"type:varchar(50);not null;index"`
	ImageURL    *string `gorm:"type:varchar(500)"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (PointModel) TableName() string {
	return "points"
}
