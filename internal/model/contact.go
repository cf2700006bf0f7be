package model

import "time"

// 提交类型
const (
	SubmissionTypeContact = "Contact"
	SubmissionTypeSponsor = "Sponsor Inquiry"
)

// ContactSubmission 联系/赞助表单提交
type ContactSubmission struct {
	Type            string    `db:"type" json:"type" bson:"type"`
	Name            string    `db:"name" json:"name,omitempty" bson:"name,omitempty"`
	Email           string    `db:"email" json:"email,omitempty" bson:"email,omitempty"`
	Phone           string    `db:"phone" json:"phone,omitempty" bson:"phone,omitempty"`
	College         string    `db:"college" json:"college,omitempty" bson:"college,omitempty"`
	Subject         string    `db:"subject" json:"subject,omitempty" bson:"subject,omitempty"`
	Message         string    `db:"message" json:"message,omitempty" bson:"message,omitempty"`
	CompanyName     string    `db:"company_name" json:"companyName,omitempty" bson:"companyName,omitempty"`
	ContactPerson   string    `db:"contact_person" json:"contactPerson,omitempty" bson:"contactPerson,omitempty"`
	SponsorshipTier string    `db:"sponsorship_tier" json:"sponsorshipTier,omitempty" bson:"sponsorshipTier,omitempty"`
	Website         string    `db:"website" json:"website,omitempty" bson:"website,omitempty"`
	SubmittedAt     time.Time `db:"submitted_at" json:"submittedAt" bson:"submittedAt"`
}

// IsSponsorInquiry 是否包含赞助相关字段
func (s *ContactSubmission) IsSponsorInquiry() bool {
	return s.CompanyName != "" || s.ContactPerson != "" || s.SponsorshipTier != "" || s.Website != ""
}
