package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"countries-api/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(router fiber.Router) error {
	return m.Called(router).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	enabled := new(mockFeature)
	enabled.On("Name").Return("enabled")
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(fiber.Router).Get("/ping", func(c *fiber.Ctx) error {
			return c.SendString("pong")
		})
	}).Return(nil)

	disabled := new(mockFeature)
	disabled.On("Name").Return("disabled")
	disabled.On("IsEnabled").Return(false)

	mgr := loader.NewManager(zap.NewNop())
	mgr.Register(enabled)
	mgr.Register(disabled)
	assert.Len(t, mgr.Features(), 2)

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllError(t *testing.T) {
	broken := new(mockFeature)
	broken.On("Name").Return("broken")
	broken.On("IsEnabled").Return(true)
	broken.On("Load", mock.Anything).Return(errors.New("no catalog"))

	never := new(mockFeature)

	mgr := loader.NewManager(nil)
	mgr.Register(broken)
	mgr.Register(never)

	err := mgr.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	never.AssertNotCalled(t, "IsEnabled")
}
