package entity

// File is the metadata of an object uploaded to storage
type File struct {
	Base
	Name        string `gorm:"size:255;not null" json:"name"`
	ContentType string `gorm:"size:255;not null" json:"contentType"`
	Size        int64  `gorm:"not null" json:"size"`
	URL         string `gorm:"type:text;not null" json:"url"`
	StorageKey  string `gorm:"type:text;not null" json:"-"`
}

// TableName returns the table name for the File model
func (File) TableName() string {
	return "files"
}
