package models

import (
	"gorm.io/gorm"
)

// KycDetail is the consolidated personal-profile record for a case.
// At most one row per case; extraction and submission both upsert it.
type KycDetail struct {
	gorm.Model
	UserID           *uint  `gorm:"index" json:"user_id"`
	KycCaseID        uint   `gorm:"index" json:"kyc_case_id"`
	Name             string `gorm:"default:''" json:"name"`
	DOB              string `gorm:"default:''" json:"dob"`
	Gender           string `gorm:"default:''" json:"gender"`
	Address          string `gorm:"type:text;default:''" json:"address"`
	FatherName       string `gorm:"default:''" json:"father_name"`
	PanNumber        string `gorm:"default:''" json:"pan_number"`
	AadharNumber     string `gorm:"default:''" json:"aadhar_number"`
	Email            string `gorm:"default:''" json:"email"`
	Phone            string `gorm:"default:''" json:"phone"`
	Occupation       string `gorm:"default:''" json:"occupation"`
	SourceOfFunds    string `gorm:"default:''" json:"source_of_funds"`
	BusinessType     string `gorm:"default:''" json:"business_type"`
	IsPep            bool   `gorm:"default:false" json:"is_pep"`
	PepDetails       string `gorm:"default:''" json:"pep_details"`
	AnnualIncome     string `gorm:"default:''" json:"annual_income"`
	PurposeOfAccount string `gorm:"default:''" json:"purpose_of_account"`
	Nationality      string `gorm:"default:''" json:"nationality"`
	MaritalStatus    string `gorm:"default:''" json:"marital_status"`
	NomineeName      string `gorm:"default:''" json:"nominee_name"`
	NomineeRelation  string `gorm:"default:''" json:"nominee_relation"`
	NomineeContact   string `gorm:"default:''" json:"nominee_contact"`
}
