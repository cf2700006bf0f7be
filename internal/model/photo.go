package model

import "time"

// 照片审核状态
const (
	PhotoStatusPending  = "pending"
	PhotoStatusApproved = "approved"
	PhotoStatusRejected = "rejected"
)

// Photo 画廊照片（含审核状态）
type Photo struct {
	ID           string    `db:"id" json:"id"`
	ImageURL     string    `db:"image_url" json:"imageUrl"`
	Category     string    `db:"category" json:"category"`
	UploaderName string    `db:"uploader_name" json:"uploaderName"`
	College      string    `db:"college" json:"college"`
	GroupName    string    `db:"group_name" json:"groupName,omitempty"`
	Status       string    `db:"status" json:"status"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submittedAt"`
}

// IsDecided 是否已完成审核
func (p *Photo) IsDecided() bool {
	return p.Status == PhotoStatusApproved || p.Status == PhotoStatusRejected
}
