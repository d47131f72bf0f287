package v1

import (
	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi/v1/response"
	"github.com/gofiber/fiber/v2"
)

const (
	kindUnsupportedContentType = "UnsupportedContentType"
	kindInvalidFileName        = "InvalidFileName"
	kindBadRequest             = "BadRequest"
	kindNotFound               = "NotFound"
	kindNotReady               = "NotReady"
	kindInternal               = "Internal"

	internalMessage = "internal error"
)

func errorResponse(ctx *fiber.Ctx, code int, kind, msg string) error {
	return ctx.Status(code).JSON(response.Error{Kind: kind, Message: msg})
}
