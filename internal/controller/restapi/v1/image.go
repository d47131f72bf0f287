package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi/v1/validate"
	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

func toReadURLResponse(u dto.ReadURL) response.ReadURL {
	return response.ReadURL{
		ImageID:   u.ImageID.String(),
		URL:       u.URL,
		ExpiresAt: u.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// @Summary 	Get image read URL
// @Description Returns a signed CDN URL for a Ready image
// @Tags 		images
// @Produce 	json
// @Param 		id path string true "Image ID(ulid)"
// @Success 	200 {object} response.ReadURL
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	404 {object} response.Error "Image not found"
// @Failure 	409 {object} response.Error "Image not ready"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/image/{id}/read-url [get]
func (r *V1) getReadURL(ctx *fiber.Ctx) error {
	id, err := validate.ImageID(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, kindBadRequest, err.Error())
	}

	readURL, err := r.query.GetReadURL(ctx.UserContext(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, kindNotFound, "image not found")
		case errors.Is(err, errs.ErrImageNotReady):
			return errorResponse(ctx, http.StatusConflict, kindNotReady, "image not ready")
		}
		r.logger.Error(err, "restapi - v1 - getReadURL")

		return errorResponse(ctx, http.StatusInternalServerError, kindInternal, internalMessage)
	}

	r.metrics.AddReadURLs(1)

	return ctx.Status(http.StatusOK).JSON(toReadURLResponse(*readURL))
}

// @Summary 	Get read URLs
// @Description Returns signed CDN URLs for the Ready images among ids; others are omitted
// @Tags 		images
// @Produce 	json
// @Param 		ids query string true "Comma separated image IDs, at most 100"
// @Success 	200 {object} response.ReadURLs
// @Failure 	400 {object} response.Error "Invalid IDs"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/image/read-urls [get]
func (r *V1) getReadURLs(ctx *fiber.Ctx) error {
	ids, err := validate.ImageIDs(ctx.Query("ids"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, kindBadRequest, err.Error())
	}

	readURLs, err := r.query.GetReadURLs(ctx.UserContext(), ids)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - getReadURLs")

		return errorResponse(ctx, http.StatusInternalServerError, kindInternal, internalMessage)
	}

	r.metrics.AddReadURLs(len(readURLs))

	items := make([]response.ReadURL, 0, len(readURLs))
	for _, u := range readURLs {
		items = append(items, toReadURLResponse(u))
	}

	return ctx.Status(http.StatusOK).JSON(response.ReadURLs{Items: items})
}
