package service_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/event"
	"jobboard-backend/internal/notify"
	"jobboard-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type capturingDispatcher struct {
	calls []struct {
		userID int32
		event  string
	}
}

func (d *capturingDispatcher) Notify(userID int32, eventName string, _ interface{}) {
	d.calls = append(d.calls, struct {
		userID int32
		event  string
	}{userID, eventName})
}

// Walks an application through its whole lifecycle with the real bus and
// notify handler in the loop: submit, employer review, offer, withdrawal.
func TestApplicationLifecycleScenario(t *testing.T) {
	ctx := context.Background()

	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	dispatcher := &capturingDispatcher{}

	bus := event.NewBus()
	bus.Subscribe(notify.NewHandler(noteRepo, dispatcher))
	svc := service.NewApplicationService(appRepo, jobRepo, userRepo, bus)

	job := &domain.Job{ID: 5, CompanyID: 3, PostedBy: 9, Title: "Backend Engineer", Status: domain.JobStatusOpen}
	applicant := &domain.User{ID: 2, Name: "Ada"}
	employer := domain.Principal{UserID: 9, Role: domain.RoleEmployer}

	current := &domain.Application{}

	// Submit: the employer gets a persisted notification and two realtime pushes.
	jobRepo.On("GetByID", ctx, int32(5)).Return(job, nil)
	userRepo.On("GetByID", ctx, int32(2)).Return(applicant, nil)
	appRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		a := args.Get(1).(*domain.Application)
		a.ID = 11
		*current = *a
	}).Return(nil).Once()
	noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientID == 9 && n.Type == domain.NotificationTypeApplicationSubmitted
	})).Return(nil).Once()

	app, err := svc.Submit(ctx, 2, 5, nil)
	require.NoError(t, err)
	require.Len(t, dispatcher.calls, 2)
	assert.Equal(t, int32(9), dispatcher.calls[0].userID)

	// Employer moves it to interviewing, then offered: the applicant is told
	// each time.
	for _, status := range []domain.ApplicationStatus{domain.ApplicationStatusInterviewing, domain.ApplicationStatusOffered} {
		appRepo.On("GetByID", ctx, int32(11)).Return(current, nil).Once()
		appRepo.On("UpdateStatus", ctx, int32(11), status).Return(nil).Once()
		noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == 2 && n.Type == domain.NotificationTypeApplicationStatus
		})).Return(nil).Once()

		app, err = svc.SetStatus(ctx, employer, 11, status)
		require.NoError(t, err)
		*current = *app
	}
	assert.Equal(t, domain.ApplicationStatusOffered, current.Status)

	// Applicant declines the offer by withdrawing: employer is notified and the
	// application is terminal.
	appRepo.On("GetByID", ctx, int32(11)).Return(current, nil).Once()
	appRepo.On("UpdateStatus", ctx, int32(11), domain.ApplicationStatusWithdrawn).Return(nil).Once()
	noteRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.RecipientID == 9 && n.Type == domain.NotificationTypeApplicationWithdrawn
	})).Return(nil).Once()

	app, err = svc.Withdraw(ctx, 2, 11)
	require.NoError(t, err)
	*current = *app
	assert.Equal(t, domain.ApplicationStatusWithdrawn, current.Status)

	// Nothing moves after withdrawal.
	appRepo.On("GetByID", ctx, int32(11)).Return(current, nil).Once()
	_, err = svc.SetStatus(ctx, employer, 11, domain.ApplicationStatusHired)
	assert.ErrorIs(t, err, domain.ErrApplicationResolved)

	// One persisted notification and two pushes per lifecycle event.
	noteRepo.AssertExpectations(t)
	assert.Len(t, dispatcher.calls, 8)
}
