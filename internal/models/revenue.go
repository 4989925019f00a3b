package models

type Revenue struct {
	Month   string `gorm:"type:varchar(4);not null;uniqueIndex" json:"month"`
	Revenue int64  `gorm:"type:integer;not null" json:"revenue"`
}

func (Revenue) TableName() string {
	return "revenue"
}
