package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi/v1/request"
	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Ingest/pkg/metrics"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary 	Create presigned upload URL
// @Description Saves a Pending image record and returns a presigned PUT URL for it.
// @Description The upload must send the same Content-Type header.
// @Tags 		ingest
// @Accept 		json
// @Produce 	json
// @Param 		request body request.PresignedURL true "Content type and file name"
// @Success 	201 {object} response.PresignedURL
// @Failure 	400 {object} response.Error "UnsupportedContentType, InvalidFileName or BadRequest"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/image/ingest/presigned-url [post]
func (r *V1) createPresignedURL(ctx *fiber.Ctx) error {
	var body request.PresignedURL

	if err := ctx.BodyParser(&body); err != nil {
		r.metrics.ObservePresign(metrics.OutcomeRejected)

		return errorResponse(ctx, http.StatusBadRequest, kindBadRequest, "invalid request body")
	}

	res, err := r.ingest.CreatePresignedUploadURL(ctx.UserContext(), body.ContentType, body.FileName)
	if err != nil {
		if errs.IsInputFault(err) {
			r.metrics.ObservePresign(metrics.OutcomeRejected)

			kind := kindInvalidFileName
			if errors.Is(err, errs.ErrUnsupportedContentType) {
				kind = kindUnsupportedContentType
			}

			return errorResponse(ctx, http.StatusBadRequest, kind, err.Error())
		}

		r.metrics.ObservePresign(metrics.OutcomeFailed)
		r.logger.Error(err, "restapi - v1 - createPresignedURL")

		return errorResponse(ctx, http.StatusInternalServerError, kindInternal, internalMessage)
	}

	r.metrics.ObservePresign(metrics.OutcomeIssued)

	return ctx.Status(http.StatusCreated).JSON(response.PresignedURL{
		ImageID:   res.ImageID.String(),
		UploadURL: res.UploadURL,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
