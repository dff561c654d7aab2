package models

import (
	"time"

	"gorm.io/gorm"
)

// KycDocument holds metadata for one uploaded file. doc_type is a free-form
// string (e.g. "aadhar_front", "pancard", "video"); re-uploading the same
// doc_type for a case overwrites the prior record instead of duplicating it.
type KycDocument struct {
	gorm.Model
	KycCaseID  uint      `gorm:"index" json:"kyc_case_id"`
	DocType    string    `gorm:"not null" json:"doc_type"`
	FilePath   string    `gorm:"not null" json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}
