package model

// CategoryModel mirrors the 'categories' table. ParentID references categories.id.
type CategoryModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(50);not null"`
	ParentID *int64 `gorm:"index"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
