package model

import "time"

// 公告类型
const (
	AnnouncementTypeImportant = "important"
	AnnouncementTypeUpdate    = "update"
	AnnouncementTypeNew       = "new"
	AnnouncementTypeHighlight = "highlight"
	AnnouncementTypeGeneral   = "general"
)

// AnnouncementDateLayout 公告展示日期格式，例如 "7 Mar 2025"
const AnnouncementDateLayout = "2 Jan 2006"

// Announcement 公告模型
type Announcement struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Date      string    `db:"display_date" json:"date"`
	Type      string    `db:"type" json:"type"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NormalizeAnnouncementType 将未知类型归为 general
func NormalizeAnnouncementType(t string) string {
	switch t {
	case AnnouncementTypeImportant, AnnouncementTypeUpdate, AnnouncementTypeNew, AnnouncementTypeHighlight:
		return t
	default:
		return AnnouncementTypeGeneral
	}
}
