package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"car-registry-api/internal/models"
	"car-registry-api/internal/repositories"
	"car-registry-api/pkg/lambda"
)

// corsHeaders is attached to every serverless response.
var corsHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, x-api-key",
}

// HandleList serves the list operation for the serverless deployment.
func (h *CarHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	opts := repositories.FindAllOptions{}
	if raw := req.QueryParams["limitPerPage"]; raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			opts.LimitPerPage = int32(v)
		}
	}

	cars, err := h.repo.FindAll(ctx, opts)
	if err != nil {
		h.logger.WithError(err).Error("Error listing cars")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}
	if cars == nil {
		cars = []models.Car{}
	}

	return lambdaJSON(http.StatusOK, listResponse(cars, len(cars))), nil
}

// HandleGet serves the get operation. The id is taken from the path
// parameters, falling back to the query string.
func (h *CarHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := requestID(req)
	if id == "" {
		return lambdaJSON(http.StatusBadRequest, errorResponse(errMissingIDParam)), nil
	}

	car, err := h.repo.FindByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error fetching car by id")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}
	if car == nil {
		return lambdaJSON(http.StatusNotFound, errorResponse(errCarNotFound)), nil
	}

	return lambdaJSON(http.StatusOK, successResponse(car)), nil
}

// HandleCreate serves the create operation.
func (h *CarHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	payload, ok := parseBody(req.Body)
	if !ok {
		return lambdaJSON(http.StatusBadRequest, errorResponse(errInvalidJSON)), nil
	}

	if result := models.ValidateCarPayload(payload, true); !result.Valid {
		return lambdaJSON(http.StatusBadRequest, errorResponse(result.Message)), nil
	}

	car, err := h.repo.Create(ctx, carInputFromPayload(payload))
	if err != nil {
		h.logger.WithError(err).Error("Error creating car")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}

	return lambdaJSON(http.StatusCreated, messageResponse(car, msgCarCreated)), nil
}

// HandleUpdate serves the partial-update operation.
func (h *CarHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := requestID(req)
	if id == "" {
		return lambdaJSON(http.StatusBadRequest, errorResponse(errMissingIDParam)), nil
	}

	payload, ok := parseBody(req.Body)
	if !ok {
		return lambdaJSON(http.StatusBadRequest, errorResponse(errInvalidJSON)), nil
	}

	if !models.HasUpdatableFields(payload) {
		return lambdaJSON(http.StatusBadRequest, errorResponse(errNoDataToUpdate)), nil
	}
	if result := models.ValidateCarPayload(payload, false); !result.Valid {
		return lambdaJSON(http.StatusBadRequest, errorResponse(result.Message)), nil
	}
	normalizeYear(payload)

	existing, err := h.repo.FindByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error updating car")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}
	if existing == nil {
		return lambdaJSON(http.StatusNotFound, errorResponse(errCarNotFound)), nil
	}

	updated, err := h.repo.Update(ctx, id, payload)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error updating car")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}

	return lambdaJSON(http.StatusOK, messageResponse(updated, msgCarUpdated)), nil
}

// HandleDelete serves the delete operation.
func (h *CarHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := requestID(req)
	if id == "" {
		return lambdaJSON(http.StatusBadRequest, errorResponse(errMissingIDParam)), nil
	}

	existing, err := h.repo.FindByID(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error deleting car")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}
	if existing == nil {
		return lambdaJSON(http.StatusNotFound, errorResponse(errCarNotFound)), nil
	}

	deleted, err := h.repo.Delete(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error deleting car")
		return lambdaJSON(http.StatusInternalServerError, errorResponse(errInternal)), nil
	}

	data := any(deleted)
	if deleted == nil {
		data = existing
	}

	return lambdaJSON(http.StatusOK, messageResponse(data, msgCarDeleted)), nil
}

// HandleOptions answers CORS preflight requests with the fixed header set.
func (h *CarHandler) HandleOptions(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders,
		Body:       []byte(`{"message":"CORS preflight successful"}`),
	}, nil
}

// ErrorProxyResponse builds an API Gateway error envelope carrying the
// standard CORS header set, for failures outside the operation handlers.
func ErrorProxyResponse(status int, message string) events.APIGatewayProxyResponse {
	return lambdaJSON(status, errorResponse(message)).ToAPIGatewayResponse()
}

// parseBody decodes a request body into a payload map. An empty body is an
// empty payload, not an error.
func parseBody(body []byte) (map[string]any, bool) {
	if len(body) == 0 {
		return map[string]any{}, true
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, true
}

func requestID(req *lambda.Request) string {
	if id := req.PathParams["id"]; id != "" {
		return id
	}
	return req.QueryParams["id"]
}

func lambdaJSON(status int, envelope Response) *lambda.Response {
	body, err := json.Marshal(envelope)
	if err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders,
			Body:       []byte(`{"success":false,"error":"Internal Server Error"}`),
		}
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       body,
	}
}
