package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"basketsplit/internal/core/application/usecases/commands"
	"basketsplit/internal/core/domain/model/catalog"
	"basketsplit/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*catalog.Catalog)
	return c, args.Error(1)
}

type MockSplitMetrics struct {
	mock.Mock
}

func (m *MockSplitMetrics) RecordSplit(outcome string, duration time.Duration, couriers int) {
	m.Called(outcome, duration, couriers)
}

func (m *MockSplitMetrics) RecordCatalogReload(result string) {
	m.Called(result)
}

func TestNewReloadCatalogCommand_Valid(t *testing.T) {
	require.NoError(t, commands.NewReloadCatalogCommand().Validate())
}

func TestReloadCatalogCommand_NotConstructedViaConstructor(t *testing.T) {
	var cmd commands.ReloadCatalogCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrReloadCatalogCommandIsNotConstructed)
}

func TestReloadCatalogCommandHandler_Handle(t *testing.T) {
	loaded, err := catalog.NewCatalog(map[string][]string{"Milk": {"Van"}, "Bread": {"Bike"}})
	require.NoError(t, err)

	tests := []struct {
		name       string
		swapResult bool
		wantResult string
	}{
		{name: "changed catalog", swapResult: true, wantResult: metrics.ReloadChanged},
		{name: "unchanged catalog", swapResult: false, wantResult: metrics.ReloadUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			mockSource := new(MockCatalogSource)
			mockSnapshot := new(MockCatalogSnapshot)
			mockMetrics := new(MockSplitMetrics)

			mock.InOrder(
				mockSource.On("Load", ctx).Return(loaded, nil).Once(),
				mockSnapshot.On("Swap", loaded).Return(tt.swapResult).Once(),
				mockMetrics.On("RecordCatalogReload", tt.wantResult).Once(),
			)

			handler := commands.NewReloadCatalogCommandHandler(mockSource, mockSnapshot, mockMetrics)

			result, err := handler.Handle(ctx, commands.NewReloadCatalogCommand())

			require.NoError(t, err)
			assert.Equal(t, commands.ReloadCatalogResult{
				Changed:     tt.swapResult,
				Items:       2,
				Fingerprint: loaded.Fingerprint(),
			}, result)
			mockSource.AssertExpectations(t)
			mockSnapshot.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestReloadCatalogCommandHandler_Handle_LoadError(t *testing.T) {
	ctx := t.Context()
	expectedError := errors.New("catalog file not found")

	mockSource := new(MockCatalogSource)
	mockSnapshot := new(MockCatalogSnapshot)
	mockMetrics := new(MockSplitMetrics)

	mockSource.On("Load", ctx).Return(nil, expectedError).Once()
	mockMetrics.On("RecordCatalogReload", metrics.ReloadFailed).Once()

	handler := commands.NewReloadCatalogCommandHandler(mockSource, mockSnapshot, mockMetrics)

	result, err := handler.Handle(ctx, commands.NewReloadCatalogCommand())

	require.ErrorIs(t, err, expectedError)
	assert.Zero(t, result)
	mockSnapshot.AssertNotCalled(t, "Swap", mock.Anything)
	mockMetrics.AssertExpectations(t)
}

func TestReloadCatalogCommandHandler_Handle_NilCatalog(t *testing.T) {
	ctx := t.Context()
	mockSource := new(MockCatalogSource)
	mockSnapshot := new(MockCatalogSnapshot)
	mockMetrics := new(MockSplitMetrics)

	mockSource.On("Load", ctx).Return(nil, nil).Once()
	mockMetrics.On("RecordCatalogReload", metrics.ReloadFailed).Once()

	handler := commands.NewReloadCatalogCommandHandler(mockSource, mockSnapshot, mockMetrics)

	_, err := handler.Handle(ctx, commands.NewReloadCatalogCommand())

	require.ErrorIs(t, err, catalog.ErrCatalogIsNotConstructed)
	mockSnapshot.AssertNotCalled(t, "Swap", mock.Anything)
}

func TestReloadCatalogCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockSource := new(MockCatalogSource)
	handler := commands.NewReloadCatalogCommandHandler(mockSource, new(MockCatalogSnapshot), new(MockSplitMetrics))

	_, err := handler.Handle(t.Context(), commands.ReloadCatalogCommand{})

	require.ErrorIs(t, err, commands.ErrReloadCatalogCommandIsNotConstructed)
	mockSource.AssertNotCalled(t, "Load", mock.Anything)
}
