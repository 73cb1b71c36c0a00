package service

import (
	"context"
	"testing"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var admin = domain.Principal{Role: domain.RoleAdmin, SubjectID: "ops"}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func memberP(id string) domain.Principal  { return domain.Principal{Role: domain.RoleMember, SubjectID: id} }
func trainerP(id string) domain.Principal { return domain.Principal{Role: domain.RoleTrainer, SubjectID: id} }

func TestDirectoryService_CreateMember_Success(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	repo.EXPECT().CreateMember(mock.Anything, mock.AnythingOfType("*domain.Member")).Return(nil)

	m, err := svc.CreateMember(context.Background(), admin, domain.CreateMemberInput{
		FirstName: " Alice ",
		LastName:  "Smith",
		Email:     " Alice@Example.COM ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Alice", m.FirstName)
	assert.Equal(t, "alice@example.com", m.Email)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestDirectoryService_CreateMember_Validation(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	tests := []struct {
		name  string
		input domain.CreateMemberInput
	}{
		{"missing first name", domain.CreateMemberInput{LastName: "S", Email: "a@b.c"}},
		{"blank last name", domain.CreateMemberInput{FirstName: "A", LastName: "  ", Email: "a@b.c"}},
		{"bad email", domain.CreateMemberInput{FirstName: "A", LastName: "S", Email: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMember(context.Background(), admin, tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDirectoryService_CreateMember_NotAdmin(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	for _, p := range []domain.Principal{memberP("m1"), trainerP("t1"), {}} {
		_, err := svc.CreateMember(context.Background(), p, domain.CreateMemberInput{
			FirstName: "A", LastName: "S", Email: "a@b.c",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}
}

func TestDirectoryService_CreateRoom_InvalidCapacity(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	_, err := svc.CreateRoom(context.Background(), admin, domain.CreateRoomInput{Name: "Hall", Capacity: 0})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDirectoryService_GetMember_Access(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	member := &domain.Member{ID: "m1", FirstName: "A"}
	repo.EXPECT().GetMember(mock.Anything, "m1").Return(member, nil).Times(3)

	for _, p := range []domain.Principal{admin, trainerP("t1"), memberP("m1")} {
		got, err := svc.GetMember(context.Background(), p, "m1")
		require.NoError(t, err)
		assert.Equal(t, member, got)
	}

	_, err := svc.GetMember(context.Background(), memberP("m2"), "m1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDirectoryService_SearchMembers_MemberForbidden(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	_, err := svc.SearchMembers(context.Background(), memberP("m1"), "a")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDirectoryService_SearchMembers_TrimsName(t *testing.T) {
	repo := mocks.NewMockDirectoryRepo(t)
	svc := NewDirectoryService(repo, newTestLogger(t))

	repo.EXPECT().SearchMembers(mock.Anything, "smith").Return([]*domain.Member{{ID: "m1"}}, nil)

	res, err := svc.SearchMembers(context.Background(), trainerP("t1"), "  smith ")

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
