package response

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseOKWithDataModel struct {
	Code         int    `json:"code"`
	Data         any    `json:"data"`
	ErrorMessage string `json:"errorMessage"`
}

type ResponseErrorModel struct {
	Code         int `json:"code"`
	ErrorMessage any `json:"errorMessage"`
}

type MessageModel struct {
	Message string `json:"message"`
}

func ResponseOKWithData(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(ResponseOKWithDataModel{
		Code: fiber.StatusOK,
		Data: data,
	})
}

// ResponseOK answers 200 with {message} as data.
func ResponseOK(c *fiber.Ctx, message string) error {
	return ResponseOKWithData(c, MessageModel{Message: message})
}

func ResponseCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(ResponseOKWithDataModel{
		Code: fiber.StatusCreated,
		Data: data,
	})
}

// ResponseError accepts either a message or a field to message map from validation.
func ResponseError(c *fiber.Ctx, err any, code int) error {
	return c.Status(code).JSON(ResponseErrorModel{
		Code:         code,
		ErrorMessage: err,
	})
}
