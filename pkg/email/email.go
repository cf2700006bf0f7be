package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"techfest/internal/model"
	"techfest/pkg/logger"
)

// Config 邮件配置
type Config struct {
	Host     string // SMTP服务器地址
	Port     int    // SMTP服务器端口
	Username string // 邮箱账号
	Password string // 邮箱密码
	From     string // 发件人
	FromName string // 发件人名称
	NotifyTo string // 通知收件人
}

var submissionTemplate = template.Must(template.New("submission").Parse(`<h2>{{.Type}}</h2>
<p>提交时间：{{.SubmittedAt}}</p>
<table>
{{- range .Fields}}
<tr><td><b>{{.Label}}</b></td><td>{{.Value}}</td></tr>
{{- end}}
</table>
`))

type field struct {
	Label string
	Value string
}

type submissionView struct {
	Type        string
	SubmittedAt string
	Fields      []field
}

// Service 邮件服务
type Service struct {
	config Config
	logger *logger.Logger
}

// NewService 创建邮件服务
func NewService(config Config, logger *logger.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// NotifySubmission 向组织者发送新的联系/赞助提交通知
func (s *Service) NotifySubmission(sub model.ContactSubmission) error {
	subject, body, err := renderSubmission(sub)
	if err != nil {
		return err
	}
	return s.send(s.config.NotifyTo, subject, body)
}

// NotifyPendingPhotos 提醒组织者有照片等待审核
func (s *Service) NotifyPendingPhotos(count int, oldest time.Time) error {
	subject, body := renderPendingDigest(count, oldest)
	return s.send(s.config.NotifyTo, subject, body)
}

func renderPendingDigest(count int, oldest time.Time) (string, string) {
	subject := fmt.Sprintf("%d photo(s) awaiting moderation", count)
	body := fmt.Sprintf("<p>画廊中有 %d 张照片等待审核，最早提交于 %s。</p>", count, template.HTMLEscapeString(oldest.Format(time.RFC1123)))
	return subject, body
}

// renderSubmission 渲染通知主题和正文，空字段不输出
func renderSubmission(sub model.ContactSubmission) (string, string, error) {
	values := map[string]string{
		"Name":             sub.Name,
		"Email":            sub.Email,
		"Phone":            sub.Phone,
		"College":          sub.College,
		"Subject":          sub.Subject,
		"Message":          sub.Message,
		"Company":          sub.CompanyName,
		"Contact Person":   sub.ContactPerson,
		"Sponsorship Tier": sub.SponsorshipTier,
		"Website":          sub.Website,
	}
	view := submissionView{
		Type:        sub.Type,
		SubmittedAt: sub.SubmittedAt.Format(time.RFC1123),
	}
	for label, value := range values {
		if value != "" {
			view.Fields = append(view.Fields, field{Label: label, Value: value})
		}
	}
	sort.Slice(view.Fields, func(i, j int) bool { return view.Fields[i].Label < view.Fields[j].Label })

	buf := new(bytes.Buffer)
	if err := submissionTemplate.Execute(buf, view); err != nil {
		return "", "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}

	who := sub.Name
	if sub.CompanyName != "" {
		who = sub.CompanyName
	}
	if who == "" {
		who = sub.Email
	}
	subject := fmt.Sprintf("New %s", sub.Type)
	if who != "" {
		subject += " from " + who
	}
	return subject, buf.String(), nil
}

// newMessage 组装邮件
func (s *Service) newMessage(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.From, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", sanitizeHeader(subject))
	m.SetBody("text/html", body)
	return m
}

// sanitizeHeader 去掉换行，避免头部注入
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// send 通过SMTP发送邮件，465端口使用隐式TLS
func (s *Service) send(to, subject, body string) error {
	d := gomail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	d.TLSConfig = &tls.Config{ServerName: s.config.Host}

	if err := d.DialAndSend(s.newMessage(to, subject, body)); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	s.logger.Info(fmt.Sprintf("邮件已发送至 %s", to))
	return nil
}
