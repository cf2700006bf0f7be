package mysql

import (
	"context"

	"github.com/jmoiron/sqlx"

	"techfest/internal/model"
)

// ContactRepository 联系表单存储库
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository 创建联系表单存储库实例
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List 按插入顺序获取全部提交
func (r *ContactRepository) List(ctx context.Context) ([]model.ContactSubmission, error) {
	submissions := []model.ContactSubmission{}
	query := `
		SELECT type, name, email, phone, college, subject, message, company_name,
			contact_person, sponsorship_tier, website, submitted_at
		FROM contact_submissions ORDER BY id ASC
	`
	if err := r.db.SelectContext(ctx, &submissions, query); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Create 追加一条提交
func (r *ContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (type, name, email, phone, college, subject, message,
			company_name, contact_person, sponsorship_tier, website, submitted_at)
		VALUES (:type, :name, :email, :phone, :college, :subject, :message,
			:company_name, :contact_person, :sponsorship_tier, :website, :submitted_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, s)
	return err
}
