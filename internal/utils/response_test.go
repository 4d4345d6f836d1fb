package utils_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/englishroom/portal-api/internal/utils"
)

func perform(t *testing.T, handler fiber.Handler) (*http.Response, utils.APIResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(data, &body))
	return resp, body
}

func TestSendSuccess(t *testing.T) {
	resp, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "fetched", []string{"a"})
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, body.Success)
	require.Equal(t, "fetched", body.Message)
	require.NotNil(t, body.Data)
}

func TestSendSuccessDefaultsMessage(t *testing.T) {
	_, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "", nil)
	})

	require.Equal(t, "success", body.Message)
}

func TestSendCreated(t *testing.T) {
	resp, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendCreated(c, "stored", map[string]int{"id": 1})
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, body.Success)
	require.Equal(t, "stored", body.Message)
}

func TestSendError(t *testing.T) {
	resp, body := perform(t, func(c *fiber.Ctx) error {
		return utils.SendError(c, fiber.StatusBadGateway, "upstream said no")
	})

	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	require.False(t, body.Success)
	require.Equal(t, "upstream said no", body.Message)
	require.Nil(t, body.Data)
}
