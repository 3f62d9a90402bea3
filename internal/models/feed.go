package models

// Approval states observed for a Feed. ApprovalState is stored as plain
// text; nothing rejects other values.
const (
	FeedStateWait    = "wait"
	FeedStateConfirm = "confm"
)

// Feed represents the feeds table: one patient-intake record submitted by a
// paramedic for a specific hospital's review.
type Feed struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	SubmitterPhone string `gorm:"index;size:50" json:"submitterPhone"`
	TargetHospital string `gorm:"index;size:255" json:"targetHospital"`
	PatientName    string `gorm:"size:100" json:"patientName"`
	AgeOrMonth     string `gorm:"size:50" json:"ageOrMonth"`
	BloodType      string `gorm:"size:20" json:"bloodType"`
	Injury         string `gorm:"size:255" json:"injury"`
	DiseaseFlag    string `gorm:"size:50" json:"diseaseFlag"`
	SurgeryFlag    string `gorm:"size:50" json:"surgeryFlag"`
	ApprovalState  string `gorm:"size:20" json:"approvalState"`
}

// TableName specifies the table name for Feed model
func (Feed) TableName() string {
	return "feeds"
}
