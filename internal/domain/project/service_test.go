package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/repository"
	"github.com/rpggio/bidintel/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("AppendProject", ctx, mock.MatchedBy(func(p project.Project) bool {
		return p.ID != "" && p.ProjectName == "Harbor Smart Lighting" && p.ContractAmount == 300
	})).Return(uint64(2), nil)

	svc := project.NewService(store, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		ProjectName:         "  Harbor Smart Lighting ",
		Keywords:            "LED, IoT",
		ContractSigningDate: "2024-06-01",
		ContractAmount:      300,
	})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "Harbor Smart Lighting", proj.ProjectName)
	store.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	svc := project.NewService(store, nil)

	cases := []project.CreateRequest{
		{ProjectName: ""},
		{ProjectName: "   "},
		{ProjectName: "Negative", ContractAmount: -1},
		{ProjectName: "Bad date", ContractSigningDate: "15/10/2023"},
		{ProjectName: "Bad end", ProjectEndDate: "soon"},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, project.ErrInvalidInput, "request %+v", req)
	}
	store.AssertNotCalled(t, "AppendProject", mock.Anything, mock.Anything)
}

func TestProjectService_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("AppendProject", ctx, mock.Anything).Return(uint64(0), repository.ErrConflict)

	svc := project.NewService(store, nil)
	_, err := svc.Create(ctx, project.CreateRequest{ProjectName: "Dup"})
	require.ErrorIs(t, err, project.ErrDuplicateID)
}

func TestProjectService_CreateStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ProjectStore{}
	store.On("AppendProject", ctx, mock.Anything).Return(uint64(0), errors.New("disk full"))

	svc := project.NewService(store, nil)
	_, err := svc.Create(ctx, project.CreateRequest{ProjectName: "Any"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "creating project")
}

func TestProjectService_List(t *testing.T) {
	store := &mocks.ProjectStore{}
	store.On("Projects").Return(sampleProjects(), uint64(7))

	svc := project.NewService(store, nil)
	res := svc.List(context.Background(), project.RawCriteria{Unit: "zhongshan", MinAmount: "1000"})
	require.Equal(t, uint64(7), res.Version)
	require.Equal(t, 3, res.Total)
	require.Equal(t, 1, res.Count)
	require.Equal(t, []string{"1"}, ids(res.Projects))
}
