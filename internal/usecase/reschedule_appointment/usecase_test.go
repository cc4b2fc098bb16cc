package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/service/availability"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type fakeRepo struct {
	appt        *domain.Appointment
	rescheduled *domain.Appointment
	err         error
}

func (f *fakeRepo) GetByID(_ context.Context, _, id int64) (*domain.Appointment, error) {
	if f.appt == nil || f.appt.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *f.appt
	return &cp, nil
}

func (f *fakeRepo) Reschedule(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rescheduled = appt
	return appt, nil
}

type fakeAvailability struct {
	result *availability.Result
	query  availability.Query
}

func (f *fakeAvailability) Compute(_ context.Context, q availability.Query) (*availability.Result, error) {
	f.query = q
	return f.result, nil
}

func (f *fakeAvailability) Today() time.Time {
	return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) domain.TimeOfDay { return domain.TimeOfDay{Hour: h, Minute: m} }

func stored(status domain.AppointmentStatus) *fakeRepo {
	return &fakeRepo{appt: &domain.Appointment{
		ID:              5,
		TenantID:        1,
		ResourceID:      "ana",
		Date:            time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		StartTime:       at(9, 0),
		DurationMinutes: 40,
		Status:          status,
	}}
}

// 10:20 недоступен из-за записи 10:40-11:00
func day() *fakeAvailability {
	return &fakeAvailability{result: &availability.Result{
		ResourceID: "ana",
		Slots: domain.SlotList{
			DurationMinutes: 40,
			Slots: []domain.Slot{
				{Start: at(10, 0), Available: true},
				{Start: at(10, 20), Available: false},
			},
		},
		Bookings: []domain.BookedInterval{{StartMinutes: 10*60 + 40, DurationMinutes: 20, ResourceID: "ana"}},
	}}
}

func request(start domain.TimeOfDay) *Request {
	return &Request{
		TenantID:      1,
		AppointmentID: 5,
		Date:          time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
	}
}

func TestUseCase_Execute_MovesAndKeepsDuration(t *testing.T) {
	repo := stored(domain.StatusConfirmed)
	avail := day()
	uc := NewUseCase(repo, avail, nopLogger{})

	req := request(at(10, 0))
	req.ResourceID = ptr.Ptr("bia")
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Conflict)
	assert.Equal(t, "bia", repo.rescheduled.ResourceID)
	assert.Equal(t, at(10, 0), repo.rescheduled.StartTime)
	assert.Equal(t, 20, repo.rescheduled.Date.Day())
	assert.Equal(t, 40, repo.rescheduled.DurationMinutes)

	assert.Equal(t, "bia", avail.query.ResourceID)
	assert.Equal(t, 40, avail.query.TotalDuration)
	require.NotNil(t, avail.query.ExcludeAppointmentID)
	assert.Equal(t, int64(5), *avail.query.ExcludeAppointmentID)
}

func TestUseCase_Execute_KeepsResourceByDefault(t *testing.T) {
	repo := stored(domain.StatusPending)
	avail := day()
	uc := NewUseCase(repo, avail, nopLogger{})

	_, err := uc.Execute(context.Background(), request(at(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, "ana", avail.query.ResourceID)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeRepo
		req     *Request
		wantErr error
	}{
		{"taken slot", stored(domain.StatusConfirmed), request(at(10, 20)), ErrSlotNotAvailable},
		{"not a slot", stored(domain.StatusConfirmed), request(at(10, 5)), ErrInvalidTimeSlot},
		{"completed", stored(domain.StatusCompleted), request(at(10, 0)), ErrCannotReschedule},
		{"cancelled", stored(domain.StatusCancelled), request(at(10, 0)), ErrCannotReschedule},
		{"unknown appointment", &fakeRepo{}, request(at(10, 0)), ErrAppointmentNotFound},
		{"race lost", &fakeRepo{appt: stored(domain.StatusPending).appt, err: appointmentRepo.ErrSlotTaken}, request(at(10, 0)), ErrSlotNotAvailable},
		{"past date", stored(domain.StatusPending), &Request{TenantID: 1, AppointmentID: 5, Date: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)}, ErrInvalidDate},
		{"empty resource", stored(domain.StatusPending), &Request{TenantID: 1, AppointmentID: 5, Date: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), ResourceID: ptr.Ptr("")}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, day(), nopLogger{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_ForcedMove(t *testing.T) {
	repo := stored(domain.StatusConfirmed)
	uc := NewUseCase(repo, day(), nopLogger{})

	req := request(at(10, 20))
	req.Force = true
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Conflict)
	assert.True(t, repo.rescheduled.Forced)
}

func TestUseCase_Execute_ForcedMoveWithoutOverlapIsNotMarked(t *testing.T) {
	tests := []struct {
		name   string
		start  domain.TimeOfDay
		result *availability.Result
	}{
		{"off grid time clear of bookings", at(9, 50), day().result},
		{"closed day", at(10, 20), &availability.Result{ResourceID: "ana", Closed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := stored(domain.StatusConfirmed)
			uc := NewUseCase(repo, &fakeAvailability{result: tt.result}, nopLogger{})

			req := request(tt.start)
			req.Force = true
			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)

			assert.False(t, resp.Conflict)
			assert.False(t, repo.rescheduled.Forced)
			assert.Equal(t, tt.start, repo.rescheduled.StartTime)
		})
	}
}
