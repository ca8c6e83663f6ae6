package grubdashserver

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	apierrors "github.com/Apurer/go-gin-grubdash-api/internal/shared/errors"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

var responder = apierrors.NewChainedResponder("", apierrors.MapRejection)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondServiceError renders pipeline rejections verbatim and hides everything else behind a 500.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// readData decodes the `data` object of the request body. It writes the 400 response
// itself and reports false when the body is not valid JSON.
func readData(c *gin.Context) (payload.Data, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithMessage("Request body could not be read"))
		return nil, false
	}
	data, err := payload.Decode(body)
	if errors.Is(err, payload.ErrMalformedBody) {
		respondProblem(c, apierrors.ErrBadRequest.WithMessage("Request body must be valid JSON"))
		return nil, false
	}
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	return data, true
}

// pathID binds a string path parameter. gin hands over the segment already decoded
// and the binder unescapes path values again, so the segment is re-escaped first.
func pathID(c *gin.Context, name string) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", name, url.PathEscape(c.Param(name)), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithMessage(fmt.Sprintf("Invalid format for parameter %s", name)))
		return "", false
	}
	return id, true
}

// dataResponse is the `{ "data": ... }` envelope every success body uses.
type dataResponse[T any] struct {
	Data T `json:"data"`
}
