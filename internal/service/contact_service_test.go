package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/model"
	"techfest/pkg/async"
)

type recordingNotifier struct {
	mu   sync.Mutex
	subs []model.ContactSubmission
}

func (n *recordingNotifier) NotifySubmission(sub model.ContactSubmission) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, sub)
	return nil
}

func TestSubmit_StampsTimeAndEchoesFields(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewContactService(store.Contacts(), nil, nil, nopLogger)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, svc.Submit(ctx, &model.ContactSubmission{Email: "a@b.com", Message: "hi"}))
	end := time.Now()

	subs, err := svc.GetSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	got := subs[0]
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "hi", got.Message)
	assert.Equal(t, model.SubmissionTypeContact, got.Type)
	assert.False(t, got.SubmittedAt.Before(start))
	assert.False(t, got.SubmittedAt.After(end))
}

func TestSubmit_TypeDiscriminator(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewContactService(store.Contacts(), nil, nil, nopLogger)
	ctx := context.Background()

	inferred := &model.ContactSubmission{CompanyName: "Acme", SponsorshipTier: "Gold"}
	require.NoError(t, svc.Submit(ctx, inferred))
	assert.Equal(t, model.SubmissionTypeSponsor, inferred.Type)

	explicit := &model.ContactSubmission{Type: model.SubmissionTypeContact, CompanyName: "Acme"}
	require.NoError(t, svc.Submit(ctx, explicit))
	assert.Equal(t, model.SubmissionTypeContact, explicit.Type)

	bogus := &model.ContactSubmission{Type: "Spam", Message: "hello"}
	require.NoError(t, svc.Submit(ctx, bogus))
	assert.Equal(t, model.SubmissionTypeContact, bogus.Type)
}

func TestSubmit_QueuesNotification(t *testing.T) {
	store, _ := newTestStore(t)
	worker := async.NewWorker(10, nopLogger)
	worker.Start(1)
	notifier := &recordingNotifier{}
	svc := NewContactService(store.Contacts(), worker, notifier, nopLogger)

	require.NoError(t, svc.Submit(context.Background(), &model.ContactSubmission{Email: "a@b.com", Message: "hi"}))
	worker.Stop()

	require.Len(t, notifier.subs, 1)
	assert.Equal(t, "a@b.com", notifier.subs[0].Email)
}
