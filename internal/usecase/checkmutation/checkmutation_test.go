package checkmutation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/mutation"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/usecase/checkmutation"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/usecase/checkmutation/mocks"
)

func TestCheckMutationUseCase_Execute_PicksMostRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	uc := checkmutation.NewUseCase(client, "OK123456", "secret")

	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newest := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)

	// Deliberately out of order: the gateway's ordering is not trusted.
	client.EXPECT().Mutations(gomock.Any(), "OK123456", "secret").Return([]mutation.Entry{
		{Date: older, Brand: "DANA", Amount: 5000},
		{Date: newest, Brand: "GOPAY", Amount: 15000},
		{Date: older.Add(time.Hour), Brand: "OVO", Amount: 7500},
	}, nil)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, newest, resp.Date)
	assert.Equal(t, "GOPAY", resp.Brand)
	assert.Equal(t, int64(15000), resp.Amount)
}

func TestCheckMutationUseCase_Execute_NoTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	uc := checkmutation.NewUseCase(client, "OK123456", "secret")

	client.EXPECT().Mutations(gomock.Any(), "OK123456", "secret").Return(nil, nil)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestCheckMutationUseCase_Execute_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	uc := checkmutation.NewUseCase(client, "OK123456", "secret")

	client.EXPECT().Mutations(gomock.Any(), "OK123456", "secret").
		Return(nil, errors.New("connection refused"))

	_, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, mutation.ErrUpstreamUnavailable)
}
