package email

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/model"
	"techfest/pkg/logger"
)

func TestRenderSubmission_Sponsor(t *testing.T) {
	sub := model.ContactSubmission{
		Type:            model.SubmissionTypeSponsor,
		CompanyName:     "Acme <Corp>",
		SponsorshipTier: "Gold",
		SubmittedAt:     time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
	}

	subject, body, err := renderSubmission(sub)
	require.NoError(t, err)

	assert.Equal(t, "New Sponsor Inquiry from Acme <Corp>", subject)
	assert.Contains(t, body, "Acme &lt;Corp&gt;")
	assert.Contains(t, body, "Gold")
	assert.NotContains(t, body, "Phone")
}

func TestRenderSubmission_AnonymousContact(t *testing.T) {
	subject, _, err := renderSubmission(model.ContactSubmission{Type: model.SubmissionTypeContact, Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "New Contact", subject)
}

func TestRenderPendingDigest(t *testing.T) {
	subject, body := renderPendingDigest(3, time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC))
	assert.Equal(t, "3 photo(s) awaiting moderation", subject)
	assert.Contains(t, body, "Mon, 03 Feb 2025 04:05:06 UTC")
}

func TestNewMessage_StripsHeaderNewlines(t *testing.T) {
	s := NewService(Config{From: "fest@example.com", FromName: "Fest"}, logger.NewNop())

	var buf bytes.Buffer
	_, err := s.newMessage("team@example.com", "hello\r\nBcc: evil@example.com", "<p>x</p>").WriteTo(&buf)
	require.NoError(t, err)
	msg := buf.String()

	assert.Contains(t, msg, `From: "Fest" <fest@example.com>`)
	assert.Contains(t, msg, "To: team@example.com")
	assert.Contains(t, msg, "Subject: hello  Bcc: evil@example.com\r\n")
	assert.NotContains(t, msg, "\r\nBcc:")
	assert.Contains(t, msg, "<p>x</p>")
}
